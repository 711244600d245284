package response

import (
	"fleet-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CarResponse struct {
	CarID        int64  `json:"car_id"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

var carFieldMapping = copier.Option{
	FieldNameMapping: []copier.FieldNameMapping{{
		SrcType: queries.ResourceView{},
		DstType: CarResponse{},
		Mapping: map[string]string{
			"ID":         "CarID",
			"Label":      "Model",
			"NaturalKey": "LicensePlate",
		},
	}},
}

func FromResourceViews(views []queries.ResourceView) ([]CarResponse, error) {
	out := make([]CarResponse, 0, len(views))
	if err := copier.CopyWithOption(&out, &views, carFieldMapping); err != nil {
		return nil, err
	}
	if out == nil {
		out = []CarResponse{}
	}
	return out, nil
}
