package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var input domain.SaleInput
		if err := utils.DecodeJSON(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), actor, input)
		if err != nil {
			writeServiceError(w, err, "Erro ao registrar venda")
			return
		}

		utils.WriteJSON(w, http.StatusCreated, sale)
	}
}

func GetSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		sale, err := service.GetSale(r.Context(), actor, id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar venda")
			return
		}

		utils.WriteJSON(w, http.StatusOK, sale)
	}
}

// ListSales aceita os filtros from, to, branch, page e size via query string
func ListSales(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		from, err := utils.ParseDateTime(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'from' inválido. Use YYYY-MM-DD ou RFC3339", nil)
			return
		}

		to, err := utils.ParseDateTime(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'to' inválido. Use YYYY-MM-DD ou RFC3339", nil)
			return
		}

		page, err := utils.ParseIntOrDefault(query.Get("page"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'page' inválido", nil)
			return
		}

		size, err := utils.ParseIntOrDefault(query.Get("size"), domain.DefaultPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'size' inválido", nil)
			return
		}

		filters := domain.SaleFilters{
			From:   from,
			To:     to,
			Branch: query.Get("branch"),
		}

		result, err := service.ListSales(r.Context(), actor, filters, domain.PageRequest{Page: page, Size: size})
		if err != nil {
			writeServiceError(w, err, "Erro ao listar vendas")
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		var input domain.SaleInput
		if err := utils.DecodeJSON(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		sale, err := service.UpdateSale(r.Context(), actor, id, input)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar venda")
			return
		}

		utils.WriteJSON(w, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteSale(r.Context(), actor, id); err != nil {
			writeServiceError(w, err, "Erro ao remover venda")
			return
		}

		logrus.WithFields(logrus.Fields{
			"sale_id": id,
			"user":    actor.Username,
		}).Info("Venda removida")

		w.WriteHeader(http.StatusNoContent)
	}
}
