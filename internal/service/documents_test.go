package service

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContainerIQ/internal/model"
	"ContainerIQ/internal/model/dto"
)

// documents 步骤提交的每个字段都必须有资料表列可落、有 me 响应字段可回填，
// 否则提交在 persistStep 里被静默丢掉
func TestDocumentsStepFieldsPersistAndPrefill(t *testing.T) {
	cases := []struct {
		role    string
		request interface{}
		profile interface{}
		me      interface{}
	}{
		{"insurance", dto.InsuranceDocumentsRequest{}, model.InsuranceProfile{}, dto.InsuranceProfileResponse{}},
		{"shipper", dto.ShipperDocumentsRequest{}, model.ShipperProfile{}, dto.ShipperProfileResponse{}},
		{"fleet", dto.FleetDocumentsRequest{}, model.FleetProfile{}, dto.FleetStateResponse{}},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			reqType := reflect.TypeOf(tc.request)
			profileType := reflect.TypeOf(tc.profile)
			meType := reflect.TypeOf(tc.me)

			require.Greater(t, reqType.NumField(), 0)

			for i := 0; i < reqType.NumField(); i++ {
				name := reqType.Field(i).Name

				col, ok := profileType.FieldByName(name)
				assert.Truef(t, ok, "field %s has no profile column", name)
				if ok {
					assert.NotEmptyf(t, col.Tag.Get("gorm"), "field %s column has no gorm tag", name)
				}

				_, ok = meType.FieldByName(name)
				assert.Truef(t, ok, "field %s missing from me response", name)
			}
		})
	}
}
