package handler

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"roster/internal/person/export"
	"roster/internal/person/handler/mocks"
	"roster/internal/person/models"
	"roster/internal/person/query"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type PersonHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  http.Handler
}

func TestPersonHandlerSuite(t *testing.T) {
	suite.Run(t, new(PersonHandlerSuite))
}

func (s *PersonHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func mary() models.PersonResponse {
	return models.PersonResponse{ID: domain.NewPersonID(), Name: "Mary", Gender: domain.GenderFemale}
}

func (s *PersonHandlerSuite) TestList() {
	s.Run("defaults to person_name ascending", func() {
		list := []models.PersonResponse{mary()}
		s.service.EXPECT().GetFilteredPersons(gomock.Any(), query.Field(""), "").Return(list)
		s.service.EXPECT().GetSortedPersons(gomock.Any(), list, query.FieldPersonName, domain.SortAscending).Return(list)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons"))

		testutil.AssertStatusOK(s.T(), rr)
		got := *testutil.UnmarshalResponse[[]models.PersonResponse](s.T(), rr)
		s.Require().Len(got, 1)
		s.True(list[0].Equal(got[0]))
	})

	s.Run("passes search and sort parameters", func() {
		s.service.EXPECT().GetFilteredPersons(gomock.Any(), query.FieldEmail, "example").Return(nil)
		s.service.EXPECT().GetSortedPersons(gomock.Any(), gomock.Any(), query.FieldDateOfBirth, domain.SortDescending).
			Return([]models.PersonResponse{})

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet,
			"/persons?search_by=Email&search_string=example&sort_by=DateOfBirth&sort_order=desc"))

		testutil.AssertStatusOK(s.T(), rr)
		s.JSONEq(`[]`, rr.Body.String())
	})

	s.Run("rejects an unknown sort order", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons?sort_order=sideways"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})
}

func (s *PersonHandlerSuite) TestSearchFields() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/search-fields"))

	testutil.AssertStatusOK(s.T(), rr)
	got := *testutil.UnmarshalResponse[[]query.SearchField](s.T(), rr)
	s.Equal(query.SearchFields(), got)
}

func (s *PersonHandlerSuite) TestAdd() {
	s.Run("created", func() {
		want := mary()
		s.service.EXPECT().AddPerson(gomock.Any(), &models.AddPersonRequest{Name: "Mary", Gender: domain.GenderFemale}).
			Return(&want, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/persons", map[string]any{
			"person_name": "<script>x</script>Mary",
			"gender":      "female",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		s.Equal(want.ID, testutil.UnmarshalResponse[models.PersonResponse](s.T(), rr).ID)
	})

	s.Run("gender outside the enumeration is rejected before the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/persons", map[string]any{
			"person_name": "Mary",
			"gender":      "robot",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})

	s.Run("validation failure", func() {
		s.service.EXPECT().AddPerson(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.NewField(dErrors.CodeValidation, "person_name", "person name is required"))

		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/persons", map[string]any{}))

		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal("person_name", body["field"])
	})

	s.Run("internal errors hide their description", func() {
		s.service.EXPECT().AddPerson(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInternal, "store exploded"))

		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/persons", map[string]any{"person_name": "X"}))

		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		s.NotContains(rr.Body.String(), "exploded")
	})
}

func (s *PersonHandlerSuite) TestGet() {
	want := mary()
	s.service.EXPECT().GetPersonByPersonID(gomock.Any(), want.ID).Return(&want)
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/"+want.ID.String()))
	testutil.AssertStatusOK(s.T(), rr)

	s.service.EXPECT().GetPersonByPersonID(gomock.Any(), gomock.Any()).Return(nil)
	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/"+domain.NewPersonID().String()))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/nope"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

func (s *PersonHandlerSuite) TestUpdate() {
	s.Run("path id wins", func() {
		want := mary()
		s.service.EXPECT().UpdatePerson(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *models.UpdatePersonRequest) (*models.PersonResponse, error) {
				s.Equal(want.ID, req.ID)
				s.Equal("Mary", req.Name)
				return &want, nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/persons/"+want.ID.String(), map[string]any{
			"person_id":   domain.NewPersonID().String(),
			"person_name": "Mary",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("unknown person is not found", func() {
		s.service.EXPECT().UpdatePerson(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.NewField(dErrors.CodeValidation, "person_id", "given person id doesn't exist"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/persons/"+domain.NewPersonID().String(), map[string]any{"person_name": "X"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}

func (s *PersonHandlerSuite) TestDelete() {
	personID := domain.NewPersonID()

	s.service.EXPECT().DeletePerson(gomock.Any(), personID).Return(true)
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/persons/"+personID.String()))
	testutil.AssertStatus(s.T(), rr, http.StatusNoContent)

	s.service.EXPECT().DeletePerson(gomock.Any(), personID).Return(false)
	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/persons/"+personID.String()))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *PersonHandlerSuite) TestExports() {
	list := []models.PersonResponse{mary()}

	s.Run("csv", func() {
		s.service.EXPECT().GetAllPersons(gomock.Any()).Return(list)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/export.csv"))

		testutil.AssertStatusOK(s.T(), rr)
		s.Equal(export.ContentTypeCSV, rr.Header().Get("Content-Type"))
		records, err := csv.NewReader(rr.Body).ReadAll()
		s.Require().NoError(err)
		s.Len(records, 2)
		s.Equal("Mary", records[1][0])
	})

	s.Run("xlsx", func() {
		s.service.EXPECT().GetAllPersons(gomock.Any()).Return(list)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/persons/export.xlsx"))

		testutil.AssertStatusOK(s.T(), rr)
		s.Equal(export.ContentTypeXLSX, rr.Header().Get("Content-Type"))
		f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
		s.Require().NoError(err)
		defer f.Close()
		rows, err := f.GetRows("Persons")
		s.Require().NoError(err)
		s.Len(rows, 2)
	})
}
