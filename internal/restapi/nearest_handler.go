package restapi

import (
	"net/http"

	"mobilefood.datasf.org/internal/utils"
)

// searchNearestHandler answers GET /search/nearest: the five permits with
// usable coordinates closest to the given point, nearest first. By default
// only approved permits are returned; all_statuses=true lifts that filter.
func (api *RestAPI) searchNearestHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	lat, fieldErrors := utils.RequireFloatParam(queryParams, "latitude", nil)
	lon, _ := utils.RequireFloatParam(queryParams, "longitude", fieldErrors)
	allStatuses, _ := utils.ParseBoolParam(queryParams, "all_statuses", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	locationErrors := utils.ValidateLocationParams(lat, lon)
	if len(locationErrors) > 0 {
		api.validationErrorResponse(w, r, locationErrors)
		return
	}

	rows := api.Permits.Nearest(lat, lon, allStatuses)
	if len(rows) == 0 {
		api.notFoundResponse(w, r, "No food trucks found with valid coordinates")
		return
	}

	api.sendRows(w, r, rows)
}
