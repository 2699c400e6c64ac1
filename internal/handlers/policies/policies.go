package policies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/retailbank/backoffice/internal/dto"
	"github.com/retailbank/backoffice/internal/service/policyservice"
	"github.com/retailbank/backoffice/pkg/utils"
)

type Service interface {
	CreatePolicy(ctx context.Context, params policyservice.CreateParams) (*policyservice.Policy, *policyservice.Breakdown, error)
	Quote(ctx context.Context, params policyservice.CreateParams) (*policyservice.Breakdown, error)
	GetPolicy(ctx context.Context, number string) (*policyservice.Policy, error)
}

type PolicyHandler struct {
	policyService Service
	validate      *validator.Validate
}

func New(policyService Service) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
		validate:      validator.New(),
	}
}

// CreatePolicy godoc
//
//	@Summary		Create an insurance policy
//	@Description	Construct a Life, Health or Accident policy, register it and return the premium breakdown.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePolicyRequestDTO	true	"Policy parameters"
//	@Success		201		{object}	dto.PolicyResponseDTO		"Registered policy"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		422		{object}	utils.Response				"Invalid start date"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/policies [post]
func (h *PolicyHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	policy, breakdown, err := h.policyService.CreatePolicy(r.Context(), params)
	if err != nil {
		respondPolicyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPolicyDTO(policy, breakdown))
}

// Quote godoc
//
//	@Summary		Quote a premium
//	@Description	Compute a premium breakdown without registering the policy.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePolicyRequestDTO	true	"Policy parameters"
//	@Success		200		{object}	dto.QuoteResponseDTO		"Premium breakdown"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		422		{object}	utils.Response				"Invalid start date"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/policies/quote [post]
func (h *PolicyHandler) Quote(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	breakdown, err := h.policyService.Quote(r.Context(), params)
	if err != nil {
		respondPolicyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{Premium: toBreakdownDTO(breakdown)})
}

// GetPolicy godoc
//
//	@Summary		Get a registered policy
//	@Tags			Policies
//	@Produce		json
//	@Success		200	{object}	dto.PolicyResponseDTO	"Policy details"
//	@Failure		404	{object}	utils.Response			"Policy not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/policies/{number} [get]
func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	policy, err := h.policyService.GetPolicy(r.Context(), number)
	if err != nil {
		if errors.Is(err, policyservice.ErrPolicyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	breakdown, err := policy.CalculatePremium()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPolicyDTO(policy, breakdown))
}

func (h *PolicyHandler) decodeParams(w http.ResponseWriter, r *http.Request) (policyservice.CreateParams, bool) {
	var req dto.CreatePolicyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return policyservice.CreateParams{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return policyservice.CreateParams{}, false
	}

	coverage, err := policyservice.ParseCoverageOption(req.Coverage)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return policyservice.CreateParams{}, false
	}
	tenure, err := policyservice.ParsePolicyTenure(req.TenureYears)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return policyservice.CreateParams{}, false
	}
	frequency, err := policyservice.ParsePremiumFrequency(req.Frequency)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return policyservice.CreateParams{}, false
	}

	return policyservice.CreateParams{
		Type:         policyservice.PolicyType(req.Type),
		StartDate:    req.StartDate,
		Coverage:     coverage,
		Tenure:       tenure,
		Frequency:    frequency,
		Age:          req.Age,
		Smoker:       req.Smoker,
		PastInjuries: req.PastInjuries,
	}, true
}

func respondPolicyError(w http.ResponseWriter, err error) {
	if errors.Is(err, policyservice.ErrInvalidStartDate) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func toBreakdownDTO(breakdown *policyservice.Breakdown) dto.PremiumBreakdownDTO {
	return dto.PremiumBreakdownDTO{
		BasePremium:             breakdown.BasePremium,
		PremiumPerPeriod:        breakdown.PremiumPerPeriod,
		TotalPeriods:            breakdown.TotalPeriods,
		TotalPremium:            breakdown.TotalPremium,
		GST:                     breakdown.GST,
		TotalPremiumWithGST:     breakdown.TotalPremiumWithGST,
		GSTPerPeriod:            breakdown.GSTPerPeriod,
		PremiumPerPeriodWithGST: breakdown.PremiumPerPeriodWithGST,
	}
}

func toPolicyDTO(policy *policyservice.Policy, breakdown *policyservice.Breakdown) dto.PolicyResponseDTO {
	return dto.PolicyResponseDTO{
		Number:    policy.Number,
		Type:      string(policy.Type),
		StartDate: policy.StartDate.Format("2006-01-02"),
		EndDate:   policy.EndDate.Format("2006-01-02"),
		Coverage:  policy.Coverage.String(),
		Tenure:    policy.Tenure.Years(),
		Frequency: policy.Frequency.String(),
		Age:       policy.Age,
		Active:    policy.Active(time.Now()),
		Premium:   toBreakdownDTO(breakdown),
		Details:   policy.Details(),
	}
}
