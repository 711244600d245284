package request

type AvailabilityQuery struct {
	Day          string `form:"day" binding:"required"`
	LicensePlate string `form:"license_plate"`
}
