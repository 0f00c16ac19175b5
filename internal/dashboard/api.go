package dashboard

import (
	"errors"
	"net/http"

	"whateating/internal/feedback"
	"whateating/internal/location"
	"whateating/internal/middleware"
	"whateating/internal/selection"

	"github.com/gin-gonic/gin"
)

// JSON mirror of the page, one endpoint per section.

func (h *Handler) ListLocations(c *gin.Context) {
	locs, err := h.locations.Source(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locs)
}

func (h *Handler) ListOpenLocations(c *gin.Context) {
	locs, err := h.locations.Open(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locs)
}

func (h *Handler) GetSummary(c *gin.Context) {
	sum, err := h.insights.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) GetAggregate(c *gin.Context) {
	agg, err := h.insights.DeliveryVsDineIn(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agg.Rows)
}

// --------------------------------------------------
// Session state
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	st := middleware.State(c)
	c.JSON(http.StatusOK, gin.H{
		"stage":             st.Stage(),
		"selection":         st.Selection.String(),
		"chosen_field":      st.ChosenField(),
		"delivery_option":   st.DeliveryOption,
		"dine_in_option":    st.DineInOption,
		"chosen_restaurant": st.ChosenRestaurant,
		"last_submission":   st.LastSubmission,
	})
}

type selectionRequest struct {
	Category string `json:"category" binding:"required"`
	Option   string `json:"option" binding:"required"`
}

func (h *Handler) PostSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	category, err := selection.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st := middleware.State(c)
	field, err := st.ConfirmOption(category, req.Option)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := middleware.SaveState(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chosen_field":      field,
		"chosen_restaurant": st.ChosenRestaurant,
		"stage":             st.Stage(),
	})
}

// --------------------------------------------------
// Candidates and detail
// --------------------------------------------------
func (h *Handler) GetCandidates(c *gin.Context) {
	names, err := h.locations.Candidates(c.Request.Context(), middleware.State(c).ChosenField())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

type restaurantRequest struct {
	Restaurant string `json:"restaurant" binding:"required"`
}

func (h *Handler) PostRestaurant(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	st := middleware.State(c)
	if st.ChosenField() == "" {
		writeError(c, selection.ErrNoFieldChosen)
		return
	}

	ok, err := h.locations.IsCandidate(c.Request.Context(), st.ChosenField(), req.Restaurant)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, location.ErrRestaurantNotFound)
		return
	}

	if err := st.ConfirmRestaurant(req.Restaurant); err != nil {
		writeError(c, err)
		return
	}
	if err := middleware.SaveState(c); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chosen_restaurant": st.ChosenRestaurant,
		"stage":             st.Stage(),
	})
}

func (h *Handler) GetDetail(c *gin.Context) {
	st := middleware.State(c)
	detail, err := h.locations.Detail(c.Request.Context(), st.ChosenField(), st.ChosenRestaurant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// --------------------------------------------------
// Feedback
// --------------------------------------------------
func (h *Handler) GetFeedback(c *gin.Context) {
	history, err := h.feedback.History(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *Handler) PostFeedback(c *gin.Context) {
	st := middleware.State(c)
	if err := h.checkRatable(c.Request.Context(), st); err != nil {
		writeError(c, err)
		return
	}

	var rec feedback.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.feedback.Submit(c.Request.Context(), rec)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := st.RecordSubmission(res.SubmissionID); err != nil {
		writeError(c, err)
		return
	}
	if err := middleware.SaveState(c); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ExportFeedback(c *gin.Context) {
	url, err := h.feedback.ExportHistory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func writeError(c *gin.Context, err error) {
	var stepErr *feedback.StepError

	switch {
	case errors.Is(err, selection.ErrNoFieldChosen),
		errors.Is(err, selection.ErrNoRestaurantChosen):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, location.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, feedback.ErrInvalidRating),
		errors.Is(err, selection.ErrEmptyRestaurant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, feedback.ErrExportDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &stepErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "step": stepErr.Step})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
