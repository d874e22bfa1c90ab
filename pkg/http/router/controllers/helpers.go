package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]any

func (api *taxiRouteAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *taxiRouteAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.log.Error("write error response", zap.String("uri", r.URL.RequestURI()), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *taxiRouteAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *taxiRouteAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *taxiRouteAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("server error", zap.String("method", r.Method), zap.String("uri", r.URL.RequestURI()), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// getStatusCode. map the util.Error code of err to a response.
func (api *taxiRouteAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var ierr *util.Error
	if !errors.As(err, &ierr) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch ierr.Code() {
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case util.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case util.ErrConflict:
		api.errorResponse(w, r, http.StatusConflict, err.Error())
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *taxiRouteAPI) validate(request any) error {
	validate := validator.New()
	err := validate.Struct(request)
	if err == nil {
		return nil
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
