package rest

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/certificate"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
	"github.com/Test-app01/sans-intern-verify/internal/service/auth"
	"github.com/Test-app01/sans-intern-verify/internal/service/intern"
	"github.com/Test-app01/sans-intern-verify/internal/service/verification"
)

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.LoginFunc(ctx, input)
}

type internServiceMock struct {
	IssueFunc        func(ctx context.Context, input intern.IssueInput) (*domain.Intern, error)
	ListFunc         func(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Intern, error)
	EditFunc         func(ctx context.Context, id uuid.UUID, input intern.EditInput) (*domain.Intern, error)
	ChangeStatusFunc func(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	ExportFunc       func(ctx context.Context, f domain.InternFilter, w io.Writer) (int, error)
}

func (m *internServiceMock) Issue(ctx context.Context, input intern.IssueInput) (*domain.Intern, error) {
	return m.IssueFunc(ctx, input)
}

func (m *internServiceMock) List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error) {
	return m.ListFunc(ctx, f)
}

func (m *internServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Intern, error) {
	return m.GetFunc(ctx, id)
}

func (m *internServiceMock) Edit(ctx context.Context, id uuid.UUID, input intern.EditInput) (*domain.Intern, error) {
	return m.EditFunc(ctx, id, input)
}

func (m *internServiceMock) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error) {
	return m.ChangeStatusFunc(ctx, id, status)
}

func (m *internServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *internServiceMock) Export(ctx context.Context, f domain.InternFilter, w io.Writer) (int, error) {
	return m.ExportFunc(ctx, f, w)
}

type verificationServiceMock struct {
	VerifyFunc func(ctx context.Context, code string) (*verification.Result, error)
	LookupFunc func(ctx context.Context, code string) (*domain.Intern, error)
}

func (m *verificationServiceMock) Verify(ctx context.Context, code string) (*verification.Result, error) {
	return m.VerifyFunc(ctx, code)
}

func (m *verificationServiceMock) Lookup(ctx context.Context, code string) (*domain.Intern, error) {
	return m.LookupFunc(ctx, code)
}

type rendererMock struct {
	RenderFunc func(ctx context.Context, d certificate.Data) (*certificate.Document, error)
	calls      int
}

func (m *rendererMock) Render(ctx context.Context, d certificate.Data) (*certificate.Document, error) {
	m.calls++
	return m.RenderFunc(ctx, d)
}
