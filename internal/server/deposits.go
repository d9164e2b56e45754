package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"heartbank/internal/locale"
	"heartbank/pkg/types"
)

type depositRequest struct {
	Content  string `json:"content" form:"content"`
	Category string `json:"category" form:"category"`
}

func depositResponse(d *types.Deposit, language types.Language) *types.DepositResponse {
	return &types.DepositResponse{
		ID:               d.ID,
		Content:          d.Content,
		Category:         d.Category,
		CreatedAt:        d.CreatedAt,
		CreatedAtDisplay: locale.FormatDate(d.CreatedAt, language.String()),
		Direction:        string(locale.TextDirection(language.String())),
	}
}

func (s *Service) handlePostDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	var req depositRequest
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid form payload")
			return
		}
		if err := decoder.Decode(&req, r.PostForm); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid form payload")
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	deposit := &types.Deposit{
		UserID:   user.ID,
		Content:  req.Content,
		Category: types.DepositCategory(req.Category),
	}

	if err := s.deposits.Create(ctx, deposit); err != nil {
		s.writeStoreError(w, r, err, "failed to create deposit")
		return
	}

	s.writeJSON(w, http.StatusCreated, depositResponse(deposit, s.requestLanguage(r, user)))
}

func (s *Service) handleListDeposits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	query := r.URL.Query()

	var filter types.DepositFilter
	if c := query.Get("category"); c != "" {
		filter.Category = types.DepositCategory(c)
		if !filter.Category.Valid() {
			s.writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
	}
	if l := query.Get("limit"); l != "" {
		filter.Limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	deposits, err := s.deposits.DepositsByUser(ctx, user.ID, filter)
	if err != nil {
		s.writeStoreError(w, r, err, "failed to list deposits")
		return
	}

	language := s.requestLanguage(r, user)
	resp := types.DepositListResponse{
		Deposits: make([]*types.DepositResponse, 0, len(deposits)),
		Count:    len(deposits),
	}
	for _, d := range deposits {
		resp.Deposits = append(resp.Deposits, depositResponse(d, language))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleGetDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	deposit, err := s.deposits.Deposit(ctx, user.ID, r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, r, err, "failed to fetch deposit")
		return
	}

	s.writeJSON(w, http.StatusOK, depositResponse(deposit, s.requestLanguage(r, user)))
}

func (s *Service) handleDeleteDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	if err := s.deposits.Delete(ctx, user.ID, r.PathValue("id")); err != nil {
		s.writeStoreError(w, r, err, "failed to delete deposit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
