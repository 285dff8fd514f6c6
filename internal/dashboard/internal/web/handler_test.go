package web

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	res domain.Overview
	err error
}

func (f fakeService) Overview(ctx context.Context) (domain.Overview, error) {
	return f.res, f.err
}

func TestAdminHandler_Stats(t *testing.T) {
	ctime := time.UnixMilli(1700000000000)
	testCases := []struct {
		name     string
		svc      fakeService
		wantCode int
		wantData Overview
	}{
		{
			name: "概览",
			svc: fakeService{res: domain.Overview{
				Stats: domain.Stats{Jobs: 3, ActiveJobs: 2, Applications: 10, NewApplications: 4, Contacts: 1},
				RecentApplications: []application.Application{
					{Id: 1, FullName: "Jane", JobTitle: "Go Engineer", Status: application.StatusNew,
						Assessment: &application.AIAssessment{Score: 91, Summary: "强"}, Ctime: ctime},
					{Id: 2, FullName: "Tom", JobTitle: "Go Engineer", Status: application.StatusNew, Ctime: ctime},
				},
				RecentContacts: []contact.Contact{
					{Id: 7, Name: "Acme", Subject: "合作", Status: contact.StatusNew, Ctime: ctime},
				},
			}},
			wantData: Overview{
				Stats: Stats{Jobs: 3, ActiveJobs: 2, Applications: 10, NewApplications: 4, Contacts: 1},
				RecentApplications: []RecentApplication{
					{Id: 1, FullName: "Jane", JobTitle: "Go Engineer", Status: "New", AIScore: intPtr(91), Ctime: ctime.UnixMilli()},
					{Id: 2, FullName: "Tom", JobTitle: "Go Engineer", Status: "New", Ctime: ctime.UnixMilli()},
				},
				RecentContacts: []RecentContact{
					{Id: 7, Name: "Acme", Subject: "合作", Status: "New", Ctime: ctime.UnixMilli()},
				},
			},
		},
		{
			name:     "系统错误",
			svc:      fakeService{err: errors.New("mock db error")},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			NewAdminHandler(tc.svc).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodGet, "/dashboard/stats", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Overview]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func intPtr(i int) *int {
	return &i
}
