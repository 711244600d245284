package badgerstore

import (
	"fmt"
	"time"
)

// Key layout:
//
//	car/id/<id:020d>                          -> carRecord (JSON)
//	car/plate/<license_plate>                 -> <id>
//	rsv/<car_id:020d>/<start>/<reservation_id> -> reservationRecord (JSON)
//	lock/<car_id:020d>/<yyyymmdd>             -> last writer timestamp
//
// Zero padding and the fixed-width start layout keep lexical order equal to
// numeric and chronological order.
const startLayout = "20060102T150405.000000000"

var carSequenceKey = []byte("seq/cars")

var carIDPrefix = []byte("car/id/")

func carIDKey(id int64) []byte {
	return fmt.Appendf(nil, "car/id/%020d", id)
}

func carPlateKey(plate string) []byte {
	return []byte("car/plate/" + plate)
}

func reservationPrefix(carID int64) []byte {
	return fmt.Appendf(nil, "rsv/%020d/", carID)
}

func reservationSeekKey(carID int64, start time.Time) []byte {
	return append(reservationPrefix(carID), start.UTC().Format(startLayout)...)
}

func reservationKey(carID int64, start time.Time, id string) []byte {
	k := reservationSeekKey(carID, start)
	k = append(k, '/')
	return append(k, id...)
}

func dayLockKey(carID int64, day time.Time) string {
	return fmt.Sprintf("lock/%020d/%s", carID, day.UTC().Format("20060102"))
}

func plateLockKey(plate string) string {
	return "lock/plate/" + plate
}
