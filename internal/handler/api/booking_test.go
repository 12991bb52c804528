//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/handler/api"
	resdto "physio-scheduler/internal/handler/dto/response"
	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"
	"physio-scheduler/internal/usecase/shared"
	"physio-scheduler/tests/common/builder"
	"physio-scheduler/tests/common/httptest"
	"physio-scheduler/tests/common/testutil"
	commandsmock "physio-scheduler/tests/mock/commands"
	queriesmock "physio-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	clientActor   = actor.Actor{ID: 42, Role: actor.RoleClient}
	providerActor = actor.Actor{ID: 7, Role: actor.RoleProvider}
	adminActor    = actor.Actor{ID: 1, Role: actor.RoleAdmin}
)

// fakeAuth authenticates any request carrying an Authorization header as a.
func fakeAuth(a actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, a)
		}
		c.Next()
	}
}

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

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", fakeAuth(clientActor), s.handler.Create)
	s.router.GET("/api/bookings/:reference", fakeAuth(clientActor), s.handler.Get)

	provider := s.router.Group("/api/bookings/:reference", fakeAuth(providerActor))
	provider.POST("/confirm", s.handler.Confirm)
	provider.POST("/decline", s.handler.Decline)
	provider.POST("/complete", s.handler.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := &commands.CreateBookingResult{
		BookingID:     b.ID,
		Reference:     b.Reference,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
		Checkout:      &commands.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"},
	}

	s.Run("success: returns 201 Created with payment session", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), clientActor, gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Equal(int64(7), in.ProviderID)
				s.Equal("2025-03-10", in.Date.String())
				s.Equal("10:00", in.Time.String())
				s.Equal("Lower back pain", in.Notes)
				return expectedResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.Reference.String(), body.Reference)
		s.Equal("pending", body.Status)
		s.Equal("pending", body.PaymentStatus)
		s.Require().NotNil(body.Payment)
		s.Equal("cs_test_123", body.Payment.SessionID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + b.Reference.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "notes length OK (1000 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "notes omitted", mutate: testutil.Field("notes", nil), expectCode: http.StatusCreated},
			{name: "notes length invalid (1001 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "missing field: providerId (required)", mutate: testutil.Field("providerId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
			{name: "providerId below minimum", mutate: testutil.Field("providerId", -3), expectCode: http.StatusBadRequest},
			{name: "date not a calendar date", mutate: testutil.Field("date", "2025-02-30"), expectCode: http.StatusBadRequest},
			{name: "time malformed", mutate: testutil.Field("time", "10am"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(expectedResult, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot taken",
				commandsError:  errs.MarkAll(errs.New("unique violation"), commands.ErrSlotTaken, errs.ErrSlotConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "slot not offered",
				commandsError:  errs.MarkAll(errs.New("10:00 outside hours"), commands.ErrSlotNotOffered, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "slot not offered",
			},
			{
				name:           "caller is not a client",
				commandsError:  errs.MarkAll(errs.New("role provider"), commands.ErrOnlyClientsBook, errs.ErrForbidden),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "only clients",
			},
			{
				name:           "unknown provider",
				commandsError:  errs.MarkAll(errs.New("provider 7"), shared.ErrProviderNotFound, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "provider not found",
			},
			{
				name:           "checkout failed",
				commandsError:  errs.MarkAll(errs.New("stripe: timeout"), commands.ErrCheckoutFailed, errs.ErrExternalDependency),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "checkout could not be created",
			},
			{
				name:           "internal server error",
				commandsError:  errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create booking failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), clientActor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "database error")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildViewQuery()
	ref := booking.Reference(view.Reference)
	url := "/api/bookings/" + view.Reference

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), clientActor, ref).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal("2025-03-10", response.Date)
		s.Equal("10:00", response.Time)
		s.Equal(int64(350000), response.AmountCents)
		s.Equal("Dr. Achieng Otieno", response.ProviderName)
		s.True(response.CreatedAt.Equal(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
	})

	s.Run("success: lower-case reference is normalised", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), clientActor, ref).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+strings.ToLower(view.Reference), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/PHY-0000", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking reference")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				queriesError:   errs.MarkAll(errs.New("no rows"), shared.ErrBookingNotFound, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "booking not found",
			},
			{
				name:           "not visible to caller",
				queriesError:   errs.MarkAll(errs.New("client 9"), queries.ErrBookingNotVisible, errs.ErrForbidden),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not visible",
			},
			{
				name:           "internal server error",
				queriesError:   errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to load booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByReference(gomock.Any(), clientActor, ref).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	b := builder.NewBookingBuilder()
	ref := b.Reference
	confirmed := builder.NewBookingBuilder().
		WithStatus(booking.StatusConfirmed, booking.PaymentPending).
		BuildViewQuery()

	type expectFn func(err error) *gomock.Call
	actions := []struct {
		path   string
		expect expectFn
	}{
		{path: "confirm", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().Confirm(gomock.Any(), providerActor, ref).
				Return(booking.StatusChange{From: booking.StatusPending, To: booking.StatusConfirmed, Changed: err == nil}, err)
		}},
		{path: "decline", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().Decline(gomock.Any(), providerActor, ref).
				Return(booking.StatusChange{From: booking.StatusPending, To: booking.StatusDeclined, Changed: err == nil}, err)
		}},
		{path: "complete", expect: func(err error) *gomock.Call {
			return s.mockCommands.EXPECT().Complete(gomock.Any(), providerActor, ref).
				Return(booking.StatusChange{From: booking.StatusConfirmed, To: booking.StatusCompleted, Changed: err == nil}, err)
		}},
	}

	for _, a := range actions {
		url := "/api/bookings/" + ref.String() + "/" + a.path

		s.Run(a.path+" success: returns refreshed booking", func() {
			a.expect(nil).Times(1)
			s.mockQueries.EXPECT().GetByReference(gomock.Any(), providerActor, ref).
				Return(confirmed, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

			var response resdto.BookingResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(confirmed.Status, response.Status)
		})

		s.Run(a.path+" error: 401 Unauthorized when unauthenticated", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
		})

		s.Run(a.path+" error: maps usecase errors to proper statuses", func() {
			testCases := []struct {
				name           string
				commandsError  error
				expectedStatus int
				expectedMsg    string
			}{
				{
					name:           "illegal transition",
					commandsError:  errs.MarkAll(errs.New("completed -> confirmed"), booking.ErrIllegalTransition, errs.ErrState),
					expectedStatus: http.StatusConflict,
				},
				{
					name:           "not a party to the booking",
					commandsError:  errs.MarkAll(errs.New("provider 8"), commands.ErrNotBookingParty, errs.ErrForbidden),
					expectedStatus: http.StatusForbidden,
					expectedMsg:    "cannot act on this booking",
				},
				{
					name:           "booking not found",
					commandsError:  errs.MarkAll(errs.New("no rows"), shared.ErrBookingNotFound, errs.ErrNotFound),
					expectedStatus: http.StatusNotFound,
					expectedMsg:    "booking not found",
				},
				{
					name:           "internal server error",
					commandsError:  errs.New("database error"),
					expectedStatus: http.StatusInternalServerError,
					expectedMsg:    "Booking update failed",
				},
			}

			for _, tc := range testCases {
				s.Run(tc.name, func() {
					a.expect(tc.commandsError).Times(1)

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				})
			}
		})
	}

	s.Run("error: 400 Bad Request for malformed reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/nope/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking reference")
	})
}
