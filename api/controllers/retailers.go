package controllers

import (
	"net/http"

	"github.com/pricepulse-au/pricepulse-backend/api/responses"
	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
)

type retailerResponse struct {
	ID       enums.Retailer `json:"id"`
	Name     string         `json:"name"`
	Homepage string         `json:"homepage"`
}

// ListRetailers serves the fixed retailer table in comparison order.
func ListRetailers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]retailerResponse, 0, len(enums.Retailers()))
		for _, retailer := range enums.Retailers() {
			out = append(out, retailerResponse{
				ID:       retailer,
				Name:     retailer.DisplayName(),
				Homepage: retailer.HomepageURL(),
			})
		}
		responses.WriteSuccess(w, map[string]any{"retailers": out, "total": len(out)})
	}
}
