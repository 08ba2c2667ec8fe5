package restapi

import (
	"net/http"

	"mobilefood.datasf.org/internal/utils"
)

// searchStreetHandler answers GET /search/street: case-insensitive substring
// match of "street" against the Address field, so "SAN" matches both
// "SANSOME ST" and "San Bruno Ave".
func (api *RestAPI) searchStreetHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	street, fieldErrors := utils.RequireTextParam(queryParams, "street", nil)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	street, err := utils.ValidateAndSanitizeQuery(street)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"street": {err.Error()},
		})
		return
	}

	rows := api.Permits.SearchByStreet(street)
	if len(rows) == 0 {
		api.notFoundResponse(w, r, "No matching addresses found")
		return
	}

	api.sendRows(w, r, rows)
}
