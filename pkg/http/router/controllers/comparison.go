package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	helper "github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/http/router/routerhelper"
)

type comparisonAPI struct {
	comparisonService ComparisonService
	log               *zap.Logger
}

func New(comparisonService ComparisonService, log *zap.Logger) *comparisonAPI {
	return &comparisonAPI{
		comparisonService: comparisonService,
		log:               log,
	}
}

func (api *comparisonAPI) Routes(group *helper.RouteGroup) {
	group.GET("/compareRoutes", api.compareRoutes)
}

func (api *comparisonAPI) compareRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request compareRoutesRequest
		err     error
	)

	query := r.URL.Query()

	request.SourceLat, err = strconv.ParseFloat(query.Get("source_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("source_lat is required and must be a valid float"))
		return
	}
	request.SourceLon, err = strconv.ParseFloat(query.Get("source_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("source_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}

	request.Mode = query.Get("mode")
	if hw := query.Get("heuristic_weight"); hw != "" {
		request.HeuristicWeight, err = strconv.ParseFloat(hw, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("heuristic_weight must be a valid float"))
			return
		}
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	report, err := api.comparisonService.CompareRoutes(request.SourceLat, request.SourceLon,
		request.DestinationLat, request.DestinationLon, request.Mode, request.HeuristicWeight)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCompareRoutesResponse(report)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
