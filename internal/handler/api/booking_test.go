//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/httptest"
	"table-booking/tests/common/testutil"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	body         any
	expectCode   int
	expectErrMsg string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildParams()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertJSONContentType(s.T(), rec)
		want := resdto.BookingResponse{
			ID:           returnView.ID,
			TableID:      reqBody.TableID.String(),
			CustomerName: reqBody.CustomerName.String(),
			BookingTime:  reqBody.BookingTime.String(),
			CreatedAt:    "2024-12-24 10:30:00",
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("BookingResponse mismatch (-want +got):\n%s", diff)
		}
		s.Regexp(regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), body.CreatedAt)
	})

	s.Run("success: unknown fields are ignored", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildParams()).
			Return(returnView, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("party_size", 4))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	missing := []testCaseBooking{
		{name: "missing field: table_id", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("table_id", nil))},
		{name: "missing field: customer_name", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", nil))},
		{name: "missing field: booking_time", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("booking_time", nil))},
		{name: "empty field: customer_name", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", ""))},
		{name: "empty field: table_id", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("table_id", ""))},
		{name: "null field: booking_time", body: testutil.DtoMap(s.T(), reqBody, testutil.NullField("booking_time"))},
		{name: "empty object", body: map[string]any{}},
		{name: "empty body", body: []byte{}},
		{name: "null document", body: []byte("null")},
		{name: "empty array document", body: []byte(`[]`)},
		{name: "array document", body: []byte(`[{"table_id":"T1"}]`)},
		{name: "zero field: customer_name", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", 0))},
		{name: "false field: customer_name", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", false))},
		{name: "zero float field: table_id", body: []byte(`{"table_id":0.0,"customer_name":"Alice","booking_time":"19:00"}`)},
		{name: "false field: booking_time", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("booking_time", false))},
	}
	for i := range missing {
		missing[i].expectCode = http.StatusBadRequest
		missing[i].expectErrMsg = "Missing required fields"
	}

	malformed := []testCaseBooking{
		{name: "invalid JSON", body: []byte(`{"table_id":`), expectCode: http.StatusBadRequest, expectErrMsg: "Invalid request format"},
		{name: "non-string table_id", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("table_id", 1)), expectCode: http.StatusBadRequest, expectErrMsg: "Invalid request format"},
		{name: "true customer_name", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("customer_name", true)), expectCode: http.StatusBadRequest, expectErrMsg: "Invalid request format"},
		{name: "object booking_time", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("booking_time", map[string]any{})), expectCode: http.StatusBadRequest, expectErrMsg: "Invalid request format"},
	}

	s.Run("error: 400 Bad Request without calling the command", func() {
		for _, group := range [][]testCaseBooking{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErrMsg)
				})
			}
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "table not found",
				commandsError:  errs.Mark(errs.New("Table with ID T99 not found"), commands.ErrTableNotFound),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Table with ID T99 not found",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: empty list is []", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.BookingView{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: nil from queries is still []", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: keeps order", func() {
		first := builder.NewBookingBuilder().WithCustomerName("Alice").BuildView()
		second := builder.NewBookingBuilder().WithCustomerName("Bob").WithTableID("T2").BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.BookingView{first, second}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(first.ID, body[0].ID)
		s.Equal("Alice", body[0].CustomerName)
		s.Equal(second.ID, body[1].ID)
		s.Equal("T2", body[1].TableID)
	})
}
