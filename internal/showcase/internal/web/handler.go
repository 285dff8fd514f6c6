// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc          service.Service
	projects     *crudHandler[domain.Project, Project]
	services     *crudHandler[domain.ServiceItem, ServiceItem]
	testimonials *crudHandler[domain.Testimonial, Testimonial]
	caseStudies  *crudHandler[domain.CaseStudy, CaseStudy]
}

func NewHandler(svc service.Service,
	projects service.ProjectService,
	services service.ServiceItemService,
	testimonials service.TestimonialService,
	caseStudies service.CaseStudyService) *Handler {
	return &Handler{
		svc:          svc,
		projects:     newCRUDHandler[domain.Project, Project](projects, newProject, Project.toDomain),
		services:     newCRUDHandler[domain.ServiceItem, ServiceItem](services, newServiceItem, ServiceItem.toDomain),
		testimonials: newCRUDHandler[domain.Testimonial, Testimonial](testimonials, newTestimonial, Testimonial.toDomain),
		caseStudies:  newCRUDHandler[domain.CaseStudy, CaseStudy](caseStudies, newCaseStudy, CaseStudy.toDomain),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/home", ginx.W(h.Home))
	g := server.Group("/showcase")
	g.POST("/projects/list", ginx.B[ListReq](h.projects.List))
	g.POST("/services/list", ginx.B[ListReq](h.services.List))
	g.POST("/testimonials/list", ginx.B[ListReq](h.testimonials.List))
	g.POST("/case-studies/list", ginx.B[ListReq](h.caseStudies.List))
}

func (h *Handler) Home(ctx *ginx.Context) (ginx.Result, error) {
	home, err := h.svc.Home(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Home{
			Services: slice.Map(home.Services, func(idx int, src domain.ServiceItem) ServiceItem {
				return newServiceItem(src)
			}),
			Testimonials: slice.Map(home.Testimonials, func(idx int, src domain.Testimonial) Testimonial {
				return newTestimonial(src)
			}),
			Projects: slice.Map(home.Projects, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
		},
	}, nil
}
