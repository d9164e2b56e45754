package server

import (
	"net/http"

	"heartbank/internal/locale"
	"heartbank/internal/utils"
	"heartbank/pkg/types"
)

func (s *Service) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	categories, err := s.categories.AllCategories(ctx)
	if err != nil {
		s.writeStoreError(w, r, err, "failed to fetch categories")
		return
	}

	language := s.requestLanguage(r, user)
	out := make([]*types.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &types.CategoryResponse{
			ID:    c.ID,
			Name:  c.Name(language),
			Icon:  utils.PtrString(c.Icon),
			Color: c.Color,
		})
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("authenticated route without user")
		s.internalServerError(w)
		return
	}

	counts, err := s.deposits.CountByCategory(ctx, user.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "failed to count deposits")
		return
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	lang := s.requestLanguage(r, user).String()
	s.writeJSON(w, http.StatusOK, types.StatsResponse{
		Total:        total,
		TotalDisplay: locale.FormatNumber(float64(total), lang),
		ByCategory:   counts,
		Direction:    string(locale.TextDirection(lang)),
	})
}

func (s *Service) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, &types.ThemeResponse{
		Palette:        types.DefaultPalette,
		CategoryColors: types.CategoryColors,
	})
}
