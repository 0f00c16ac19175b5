package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"

	"whateating/internal/feedback"
	"whateating/internal/insights"
	"whateating/internal/location"
	"whateating/internal/middleware"
	"whateating/internal/selection"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	locations *location.Service
	insights  *insights.Service
	feedback  *feedback.Service
}

func NewHandler(
	locations *location.Service,
	insights *insights.Service,
	feedback *feedback.Service,
) *Handler {
	return &Handler{
		locations: locations,
		insights:  insights,
		feedback:  feedback,
	}
}

// --------------------------------------------------
// GET /
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	page, err := h.buildPage(c.Request.Context(), middleware.State(c))
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", page)
}

// --------------------------------------------------
// GET /chart.png
// --------------------------------------------------
func (h *Handler) Chart(c *gin.Context) {
	agg, err := h.insights.DeliveryVsDineIn(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := insights.RenderBarChart(&buf, *agg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// --------------------------------------------------
// POST /choose/delivery, POST /choose/dine-in
// --------------------------------------------------

// ChooseOption confirms the radio option of one column.
func (h *Handler) ChooseOption(category selection.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.State(c)
		if _, err := st.ConfirmOption(category, c.PostForm("option")); err != nil {
			h.renderError(c, http.StatusBadRequest, err)
			return
		}

		if err := middleware.SaveState(c); err != nil {
			h.renderError(c, http.StatusInternalServerError, err)
			return
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

// --------------------------------------------------
// POST /choose/restaurant
// --------------------------------------------------
func (h *Handler) ChooseRestaurant(c *gin.Context) {
	st := middleware.State(c)
	name := c.PostForm("restaurant")

	if st.ChosenField() == "" {
		h.renderError(c, http.StatusConflict, selection.ErrNoFieldChosen)
		return
	}

	ok, err := h.locations.IsCandidate(c.Request.Context(), st.ChosenField(), name)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		h.renderError(c, http.StatusBadRequest, location.ErrRestaurantNotFound)
		return
	}

	if err := st.ConfirmRestaurant(name); err != nil {
		h.renderError(c, http.StatusBadRequest, err)
		return
	}

	if err := middleware.SaveState(c); err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// --------------------------------------------------
// POST /feedback
// --------------------------------------------------

// SubmitFeedback answers with the page itself so the success message and
// the re-read history belong to the same pass as the write.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	st := middleware.State(c)

	if err := h.checkRatable(ctx, st); err != nil {
		switch {
		case errors.Is(err, selection.ErrNoRestaurantChosen):
			h.renderError(c, http.StatusConflict, err)
		case errors.Is(err, location.ErrRestaurantNotFound):
			h.renderError(c, http.StatusNotFound, err)
		default:
			h.renderError(c, http.StatusInternalServerError, err)
		}
		return
	}

	var rec feedback.Record
	if err := c.ShouldBind(&rec); err != nil {
		h.renderError(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.feedback.Submit(ctx, rec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, feedback.ErrInvalidRating) {
			status = http.StatusBadRequest
		}
		h.renderError(c, status, err)
		return
	}

	if err := st.RecordSubmission(res.SubmissionID); err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	if err := middleware.SaveState(c); err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}

	page, err := h.buildPage(ctx, st)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	page.Result = res
	page.Form = res.Record

	c.HTML(http.StatusOK, "index.html", page)
}

// --------------------------------------------------
// POST /export
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	url, err := h.feedback.ExportHistory(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, feedback.ErrExportDisabled) {
			status = http.StatusServiceUnavailable
		}
		h.renderError(c, status, err)
		return
	}

	c.Redirect(http.StatusSeeOther, url)
}

// checkRatable holds while the chosen restaurant is still a candidate of
// the chosen field; a restaurant kept across a field change is not.
func (h *Handler) checkRatable(ctx context.Context, st *selection.State) error {
	if st.ChosenRestaurant == "" {
		return selection.ErrNoRestaurantChosen
	}

	ok, err := h.locations.IsCandidate(ctx, st.ChosenField(), st.ChosenRestaurant)
	if err != nil {
		return err
	}
	if !ok {
		return location.ErrRestaurantNotFound
	}
	return nil
}

func (h *Handler) renderError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("❌ [DASHBOARD] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.HTML(status, "error.html", gin.H{
		"Title":  PageTitle,
		"Status": status,
		"Error":  err.Error(),
	})
}
