package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// JobRequest is the request body shared by posting and updating a job. The
// owner is never taken from the body; mutations are stamped with the
// authenticated account email.
type JobRequest struct {
	Title           string   `json:"jobTitle" validate:"required"`
	CompanyName     string   `json:"companyName" validate:"required"`
	CompanyLogo     string   `json:"companyLogo"`
	MinSalary       int      `json:"minPrice" validate:"min=0"`
	MaxSalary       int      `json:"maxPrice" validate:"min=0"`
	SalaryType      string   `json:"salaryType" validate:"omitempty,oneof=Hourly Monthly Yearly"`
	Location        string   `json:"jobLocation"`
	PostingDate     string   `json:"postingDate"`
	ExperienceLevel string   `json:"experienceLevel"`
	EmploymentType  string   `json:"employmentType"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
}

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler holds dependencies for job posting handlers.
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler.
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// Create handles POST /post-job. The posting is owned by the authenticated
// account and acknowledged with the assigned id.
func (h *JobHandler) Create(c echo.Context) error {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("authenticated email missing from context")
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMalformedInput.WrapMessage("bind job input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	job, err := h.jobUC.Create(c.Request().Context(), req.toInput(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Inserted(c, job.ID.String())
}

// List handles GET /all-jobs, newest first.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewJobViews(jobs))
}

// GetByID handles GET /all-jobs/:id.
func (h *JobHandler) GetByID(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewJobView(job))
}

// ListByOwner handles GET /myJobs/:email.
func (h *JobHandler) ListByOwner(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return domainerrors.ErrMalformedInput.WrapMessage("owner email missing")
	}

	jobs, err := h.jobUC.ListByOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewJobViews(jobs))
}

// Update handles PATCH /update-job/:id. Only the posting owner may update;
// a missing id either upserts or answers 404 depending on configuration.
func (h *JobHandler) Update(c echo.Context) error {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("authenticated email missing from context")
	}

	id, err := parseJobID(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMalformedInput.WrapMessage("bind job input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.jobUC.Update(c.Request().Context(), id, req.toInput(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Created {
		return response.Upserted(c, output.Job.ID.String())
	}

	return response.Updated(c)
}

// Delete handles DELETE /job/:id. Only the posting owner may delete.
func (h *JobHandler) Delete(c echo.Context) error {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("authenticated email missing from context")
	}

	id, err := parseJobID(c)
	if err != nil {
		return err
	}

	// Deletions are audit-logged with the stable account id, not just the email.
	if accountID, ok := middleware.GetAccountID(c); ok {
		h.logger.Info("Job delete requested",
			slog.Any("accountID", accountID),
			slog.Any("jobID", id),
		)
	}

	if err := h.jobUC.Delete(c.Request().Context(), id, email); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c)
}

// ShareQR handles GET /all-jobs/:id/qr, answering a PNG QR code that links
// to the posting's detail page.
func (h *JobHandler) ShareQR(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return err
	}

	png, err := h.jobUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (r *JobRequest) toInput() *usecase.JobInput {
	return &usecase.JobInput{
		Title:           r.Title,
		CompanyName:     r.CompanyName,
		CompanyLogo:     r.CompanyLogo,
		MinSalary:       r.MinSalary,
		MaxSalary:       r.MaxSalary,
		SalaryType:      r.SalaryType,
		Location:        r.Location,
		PostingDate:     r.PostingDate,
		ExperienceLevel: r.ExperienceLevel,
		EmploymentType:  r.EmploymentType,
		Description:     r.Description,
		Skills:          r.Skills,
	}
}

func parseJobID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrMalformedInput.WrapMessage("job id is not a valid uuid")
	}

	return id, nil
}
