package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	deliverymiddleware "jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	mocks "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerEmail = "owner@example.com"

func newJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{
		jobUC:  uc,
		logger: newDiscardLogger(),
	}
}

func asOwner(c echo.Context) {
	deliverymiddleware.SetAccount(c, uuid.New(), ownerEmail)
}

func testJob(id uuid.UUID) *entity.Job {
	return &entity.Job{
		ID:          id,
		Title:       "Senior Go Engineer",
		CompanyName: "Acme",
		MinSalary:   900,
		MaxSalary:   1400,
		SalaryType:  "Monthly",
		Location:    "Berlin",
		Skills:      []string{"go", "postgres"},
		PostedBy:    ownerEmail,
		CreatedAt:   time.Now().UTC(),
	}
}

const jobBody = `{
	"jobTitle": "Senior Go Engineer",
	"companyName": "Acme",
	"minPrice": 900,
	"maxPrice": 1400,
	"salaryType": "Monthly",
	"jobLocation": "Berlin",
	"skills": ["go", "postgres"]
}`

func TestJobHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	created := testJob(uuid.New())
	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.JobInput"), ownerEmail).
		Return(created, nil)

	rec := doJSON(t, e, http.MethodPost, "/post-job", jobBody, newJobHandler(uc).Create, asOwner)

	require.Equal(t, http.StatusOK, rec.Code)

	var ack struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, created.ID.String(), ack.InsertedID)
}

func TestJobHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)

	rec := doJSON(t, e, http.MethodPost, "/post-job", `{"companyName":"Acme"}`, newJobHandler(uc).Create, asOwner)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Missing or invalid request fields","status":"false"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Create")
}

func TestJobHandler_List(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	jobs := []*entity.Job{testJob(uuid.New()), testJob(uuid.New())}
	uc.EXPECT().List(mock.Anything).Return(jobs, nil)

	rec := doJSON(t, e, http.MethodGet, "/all-jobs", "", newJobHandler(uc).List, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Senior Go Engineer", views[0]["jobTitle"])
	assert.Equal(t, ownerEmail, views[0]["postedBy"])
	assert.Contains(t, views[0], "createAt")
}

func TestJobHandler_GetByID_NotFound(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	uc.EXPECT().GetByID(mock.Anything, id).Return(nil, domainerrors.ErrJobNotFound.WrapMessage("job lookup failed"))

	rec := doJSON(t, e, http.MethodGet, "/all-jobs/"+id.String(), "", newJobHandler(uc).GetByID, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Job not found","status":"false"}`, rec.Body.String())
}

func TestJobHandler_GetByID_InvalidID(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)

	rec := doJSON(t, e, http.MethodGet, "/all-jobs/not-a-uuid", "", newJobHandler(uc).GetByID, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetByID")
}

func TestJobHandler_ListByOwner(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	uc.EXPECT().ListByOwner(mock.Anything, ownerEmail).Return([]*entity.Job{testJob(uuid.New())}, nil)

	rec := doJSON(t, e, http.MethodGet, "/myJobs/"+ownerEmail, "", newJobHandler(uc).ListByOwner, func(c echo.Context) {
		c.SetParamNames("email")
		c.SetParamValues(ownerEmail)
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ownerEmail)
}

func TestJobHandler_Update_InPlace(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	uc.EXPECT().
		Update(mock.Anything, id, mock.AnythingOfType("*usecase.JobInput"), ownerEmail).
		Return(&usecase.UpdateJobOutput{Job: testJob(id), Created: false}, nil)

	rec := doJSON(t, e, http.MethodPatch, "/update-job/"+id.String(), jobBody, newJobHandler(uc).Update, func(c echo.Context) {
		asOwner(c)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"modifiedCount":1}`, rec.Body.String())
}

func TestJobHandler_Update_Upserted(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	uc.EXPECT().
		Update(mock.Anything, id, mock.AnythingOfType("*usecase.JobInput"), ownerEmail).
		Return(&usecase.UpdateJobOutput{Job: testJob(id), Created: true}, nil)

	rec := doJSON(t, e, http.MethodPatch, "/update-job/"+id.String(), jobBody, newJobHandler(uc).Update, func(c echo.Context) {
		asOwner(c)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"modifiedCount":0,"upsertedId":"`+id.String()+`"}`, rec.Body.String())
}

func TestJobHandler_Update_NotOwner(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	uc.EXPECT().
		Update(mock.Anything, id, mock.AnythingOfType("*usecase.JobInput"), ownerEmail).
		Return(nil, domainerrors.ErrNotJobOwner.WrapMessage("update denied"))

	rec := doJSON(t, e, http.MethodPatch, "/update-job/"+id.String(), jobBody, newJobHandler(uc).Update, func(c echo.Context) {
		asOwner(c)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Only the posting owner may modify this job","status":"false"}`, rec.Body.String())
}

func TestJobHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	uc.EXPECT().Delete(mock.Anything, id, ownerEmail).Return(nil)

	rec := doJSON(t, e, http.MethodDelete, "/job/"+id.String(), "", newJobHandler(uc).Delete, func(c echo.Context) {
		asOwner(c)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestJobHandler_Delete_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()

	rec := doJSON(t, e, http.MethodDelete, "/job/"+id.String(), "", newJobHandler(uc).Delete, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Delete")
}

func TestJobHandler_ShareQR(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	uc.EXPECT().ShareQR(mock.Anything, id).Return(png, nil)

	rec := doJSON(t, e, http.MethodGet, "/all-jobs/"+id.String()+"/qr", "", newJobHandler(uc).ShareQR, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues(id.String())
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestJobHandler_List_StoreUnavailable(t *testing.T) {
	e := newTestEcho()
	uc := mocks.NewMockJobUsecase(t)
	uc.EXPECT().
		List(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "list jobs"))

	rec := doJSON(t, e, http.MethodGet, "/all-jobs", "", newJobHandler(uc).List, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Cannot reach the job store, try again later","status":"false"}`, rec.Body.String())
}
