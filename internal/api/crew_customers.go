package api

import "net/http"

func ListCrewHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Crew.ListCrew))
}

func GetCrewMemberHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Crew.GetCrewMember)
}

func SaveCrewMemberHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Crew.SaveCrewMember)
}

func DeleteCrewMemberHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Crew.DeleteCrewMember)
}

// ListCrewDocumentsHandler takes an optional ?crewMemberId= filter.
func ListCrewDocumentsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(byQuery("crewMemberId", deps.Services.Crew.ListDocuments))
}

func GetCrewDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Crew.GetDocument)
}

func SaveCrewDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Crew.SaveDocument)
}

func DeleteCrewDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Crew.DeleteDocument)
}

func ListCustomersHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Customers.ListCustomers))
}

func GetCustomerHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Customers.GetCustomer)
}

func SaveCustomerHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Customers.SaveCustomer)
}

func DeleteCustomerHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Customers.DeleteCustomer)
}
