package restapi

import (
	"net/http"

	"mobilefood.datasf.org/internal/utils"
)

// searchApplicantHandler answers GET /search/applicant: case-insensitive
// substring match of "name" against the Applicant field, optionally narrowed
// to rows whose Status equals "status" exactly (case-insensitive).
func (api *RestAPI) searchApplicantHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	name, fieldErrors := utils.RequireTextParam(queryParams, "name", nil)
	status := queryParams.Get("status")

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	name, err := utils.ValidateAndSanitizeQuery(name)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return
	}

	status, err = utils.ValidateAndSanitizeQuery(status)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"status": {err.Error()},
		})
		return
	}

	rows := api.Permits.SearchByApplicant(name, status)
	if len(rows) == 0 {
		api.notFoundResponse(w, r, "No matching applicant(s) found")
		return
	}

	api.sendRows(w, r, rows)
}
