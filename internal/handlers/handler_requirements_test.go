package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
	"github.com/SscSPs/sya_logistica/internal/dto"
	"github.com/SscSPs/sya_logistica/internal/handlers"
	"github.com/SscSPs/sya_logistica/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, req dto.SubmitRequirementsRequest) (*domain.SubmitResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmitResult), args.Error(1)
}

type MockRetrievalService struct {
	mock.Mock
}

func (m *MockRetrievalService) FetchLedger(ctx context.Context) (*domain.LedgerDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerDocument), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListMaterials(ctx context.Context) ([]domain.MaterialCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialCatalogEntry), args.Error(1)
}

var (
	_ portssvc.SubmissionSvc = (*MockSubmissionService)(nil)
	_ portssvc.RetrievalSvc  = (*MockRetrievalService)(nil)
	_ portssvc.CatalogSvc    = (*MockCatalogService)(nil)
)

// --- Test Suite Setup ---

type RequirementHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockSubmission *MockSubmissionService
	mockRetrieval  *MockRetrievalService
	mockCatalog    *MockCatalogService
}

func (suite *RequirementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSubmission = new(MockSubmissionService)
	suite.mockRetrieval = new(MockRetrievalService)
	suite.mockCatalog = new(MockCatalogService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Submission: suite.mockSubmission,
		Retrieval:  suite.mockRetrieval,
		Catalog:    suite.mockCatalog,
	})
}

func (suite *RequirementHandlerTestSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RequirementHandlerTestSuite) decode(w *httptest.ResponseRecorder) dto.SubmitRequirementsResponse {
	var resp dto.SubmitRequirementsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const validSubmission = `{"fecha":"2024/01/10","solicitante":"Ana","orden_trabajo":"OT-1","cliente":"ACME",
	"productos":[{"producto":"Cable","unidad":"m","cantidad":50}]}`

// --- Test Cases ---

func (suite *RequirementHandlerTestSuite) TestSubmit_Success_BothPrefixes() {
	for _, prefix := range []string{"/api", "/api/logistica"} {
		suite.Run(prefix, func() {
			suite.mockSubmission.On("Submit", mock.Anything, mock.MatchedBy(func(req dto.SubmitRequirementsRequest) bool {
				return req.Solicitante == "Ana" && len(req.Productos) == 1 && req.Productos[0].Producto == "Cable"
			})).Return(&domain.SubmitResult{SubmissionID: "sub-1", RowsWritten: 1}, nil).Once()

			w := suite.serve(http.MethodPost, prefix+"/enviar-requerimientos", validSubmission)

			suite.Equal(http.StatusOK, w.Code)
			resp := suite.decode(w)
			suite.Equal(dto.StatusSuccess, resp.Status)
			suite.Equal("Requerimientos procesados correctamente", resp.Message)
			suite.Require().NotNil(resp.RowsWritten)
			suite.Equal(1, *resp.RowsWritten)
			suite.Equal("sub-1", resp.SubmissionID)
		})
	}
	suite.mockSubmission.AssertExpectations(suite.T())
}

func (suite *RequirementHandlerTestSuite) TestSubmit_InvalidJSON() {
	w := suite.serve(http.MethodPost, "/api/enviar-requerimientos", `{"fecha":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decode(w)
	suite.Equal(dto.StatusError, resp.Status)
	suite.Contains(resp.Message, "Formato de solicitud inválido")
	suite.mockSubmission.AssertNotCalled(suite.T(), "Submit", mock.Anything, mock.Anything)
}

func (suite *RequirementHandlerTestSuite) TestSubmit_ValidationErrorIsServerError() {
	validationErr := fmt.Errorf("product 1 (Cable): %w: quantity \"abc\" is not a number", apperrors.ErrValidation)
	suite.mockSubmission.On("Submit", mock.Anything, mock.Anything).Return(nil, validationErr).Once()

	w := suite.serve(http.MethodPost, "/api/logistica/enviar-requerimientos", validSubmission)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decode(w)
	suite.Equal(dto.StatusError, resp.Status)
	suite.Contains(resp.Message, "abc")
	suite.Nil(resp.RowsWritten)
}

func (suite *RequirementHandlerTestSuite) TestSubmit_StorageErrorHidesDetail() {
	storageErr := fmt.Errorf("save ledger /srv/ledger.xlsx: %w: disk full", apperrors.ErrStorage)
	suite.mockSubmission.On("Submit", mock.Anything, mock.Anything).Return(nil, storageErr).Once()

	w := suite.serve(http.MethodPost, "/api/enviar-requerimientos", validSubmission)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decode(w)
	suite.Equal(dto.StatusError, resp.Status)
	suite.NotContains(resp.Message, "/srv/ledger.xlsx")
}

func (suite *RequirementHandlerTestSuite) TestDownload_Success() {
	modified := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	suite.mockRetrieval.On("FetchLedger", mock.Anything).Return(&domain.LedgerDocument{
		Filename:    domain.LedgerFilename,
		ContentType: domain.LedgerContentType,
		Content:     []byte("PK\x03\x04"),
		ModifiedAt:  modified,
	}, nil).Twice()

	for _, prefix := range []string{"/api", "/api/logistica"} {
		w := suite.serve(http.MethodGet, prefix+"/descargar-requerimientos", "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(domain.LedgerContentType, w.Header().Get("Content-Type"))
		suite.Equal(`attachment; filename="sya_logistica_requerimientos.xlsx"`, w.Header().Get("Content-Disposition"))
		suite.Equal(modified.Format(http.TimeFormat), w.Header().Get("Last-Modified"))
		suite.Equal([]byte("PK\x03\x04"), w.Body.Bytes())
	}
	suite.mockRetrieval.AssertExpectations(suite.T())
}

func (suite *RequirementHandlerTestSuite) TestDownload_StorageError() {
	suite.mockRetrieval.On("FetchLedger", mock.Anything).Return(nil, apperrors.ErrStorage).Once()

	w := suite.serve(http.MethodGet, "/api/descargar-requerimientos", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(dto.StatusError, suite.decode(w).Status)
}

func (suite *RequirementHandlerTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Test Suite ---

func TestRequirementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequirementHandlerTestSuite))
}
