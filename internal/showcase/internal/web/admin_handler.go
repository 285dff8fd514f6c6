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
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 后台维护项目、服务、客户评价和案例
type AdminHandler struct {
	projects     *crudHandler[domain.Project, Project]
	services     *crudHandler[domain.ServiceItem, ServiceItem]
	testimonials *crudHandler[domain.Testimonial, Testimonial]
	caseStudies  *crudHandler[domain.CaseStudy, CaseStudy]
}

func NewAdminHandler(projects service.ProjectService,
	services service.ServiceItemService,
	testimonials service.TestimonialService,
	caseStudies service.CaseStudyService) *AdminHandler {
	return &AdminHandler{
		projects:     newCRUDHandler[domain.Project, Project](projects, newProject, Project.toDomain),
		services:     newCRUDHandler[domain.ServiceItem, ServiceItem](services, newServiceItem, ServiceItem.toDomain),
		testimonials: newCRUDHandler[domain.Testimonial, Testimonial](testimonials, newTestimonial, Testimonial.toDomain),
		caseStudies:  newCRUDHandler[domain.CaseStudy, CaseStudy](caseStudies, newCaseStudy, CaseStudy.toDomain),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	h.projects.privateRoutes(server.Group("/showcase/projects"))
	h.services.privateRoutes(server.Group("/showcase/services"))
	h.testimonials.privateRoutes(server.Group("/showcase/testimonials"))
	h.caseStudies.privateRoutes(server.Group("/showcase/case-studies"))
}
