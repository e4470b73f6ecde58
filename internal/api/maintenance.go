package api

import (
	"net/http"
)

// Maintenance lists take an optional ?aircraftId= filter.

func ListTasksHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(byQuery("aircraftId", deps.Services.Maintenance.ListTasks))
}

func GetTaskHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Maintenance.GetTask)
}

func SaveTaskHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Maintenance.SaveTask)
}

func DeleteTaskHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Maintenance.DeleteTask)
}

func ListMelItemsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(byQuery("aircraftId", deps.Services.Maintenance.ListMelItems))
}

func GetMelItemHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Maintenance.GetMelItem)
}

// SaveMelItemHandler handles POST /api/v1/maintenance/mel and PUT
// /api/v1/maintenance/mel/{id}. Leaving status out lets it be derived from
// the stored item and isDeferred.
func SaveMelItemHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Maintenance.SaveMelItem)
}

func DeleteMelItemHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Maintenance.DeleteMelItem)
}

func ListDiscrepanciesHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(byQuery("aircraftId", deps.Services.Maintenance.ListDiscrepancies))
}

func GetDiscrepancyHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Maintenance.GetDiscrepancy)
}

func SaveDiscrepancyHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Maintenance.SaveDiscrepancy)
}

func DeleteDiscrepancyHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Maintenance.DeleteDiscrepancy)
}

func ListCostsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(byQuery("aircraftId", deps.Services.Maintenance.ListCosts))
}

func GetCostHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Maintenance.GetCost)
}

func SaveCostHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Maintenance.SaveCost)
}

func DeleteCostHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Maintenance.DeleteCost)
}
