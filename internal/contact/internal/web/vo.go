package web

import (
	"github.com/ecodeclub/mastersolis/internal/contact/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type SubmitReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
	ServiceInterest string `json:"serviceInterest"`
	BudgetRange     string `json:"budgetRange"`
}

func (r SubmitReq) toDomain() domain.Contact {
	return domain.Contact{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Company:         r.Company,
		Subject:         r.Subject,
		Message:         r.Message,
		ServiceInterest: r.ServiceInterest,
		BudgetRange:     r.BudgetRange,
	}
}

type ListReq struct {
	// 为空表示全部
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type StatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type Contact struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
	ServiceInterest string `json:"serviceInterest"`
	BudgetRange     string `json:"budgetRange"`
	Status          string `json:"status"`
	Ctime           int64  `json:"ctime"`
	Utime           int64  `json:"utime"`
}

func newContact(c domain.Contact) Contact {
	return Contact{
		Id:              c.Id,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Company:         c.Company,
		Subject:         c.Subject,
		Message:         c.Message,
		ServiceInterest: c.ServiceInterest,
		BudgetRange:     c.BudgetRange,
		Status:          c.Status.String(),
		Ctime:           c.Ctime.UnixMilli(),
		Utime:           c.Utime.UnixMilli(),
	}
}

type ContactList struct {
	List  []Contact `json:"list"`
	Total int64     `json:"total"`
}

type Stats struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}
