package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
)

type stubBlobStore struct{}

func (stubBlobStore) Upload(_ context.Context, folder, originalName string, _ []byte) (string, error) {
	return "https://cdn.example.com/" + folder + "/" + originalName, nil
}

func (stubBlobStore) Delete(context.Context, string) error { return nil }

type stubComplaintRepo struct{}

func (stubComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	complaint.ID = 1
	return nil
}
func (stubComplaintRepo) ListAll(context.Context) ([]domain.Complaint, error) { return nil, nil }
func (stubComplaintRepo) Assign(context.Context, int64, int64) (int64, error) { return 1, nil }
func (stubComplaintRepo) ListAssignedVisible(context.Context, int64) ([]domain.Complaint, error) {
	return nil, nil
}
func (stubComplaintRepo) MarkResolved(context.Context, int64) (int64, error) { return 1, nil }
func (stubComplaintRepo) HideFromStaff(context.Context, int64, int64) (int64, error) {
	return 1, nil
}
func (stubComplaintRepo) Delete(context.Context, int64) error { return nil }

type stubFeedbackRepo struct{}

func (stubFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	feedback.ID = 1
	return nil
}
func (stubFeedbackRepo) ListAll(context.Context) ([]domain.Feedback, error) { return nil, nil }
func (stubFeedbackRepo) SetPublic(context.Context, int64, bool) (int64, error) { return 1, nil }
func (stubFeedbackRepo) ListPublic(context.Context) ([]domain.PublicFeedback, error) {
	return nil, nil
}
func (stubFeedbackRepo) Delete(context.Context, int64) error { return nil }

type stubNotificationRepo struct{}

func (stubNotificationRepo) CreateWithRecipients(_ context.Context, notification *domain.Notification, _ []int64) error {
	notification.ID = 1
	return nil
}
func (stubNotificationRepo) ListForStaff(context.Context, int64) ([]domain.StaffNotification, error) {
	return nil, nil
}
func (stubNotificationRepo) MarkRead(context.Context, int64, int64) error { return nil }
func (stubNotificationRepo) MarkAllRead(context.Context, int64) error     { return nil }
func (stubNotificationRepo) ListAll(context.Context) ([]domain.AdminNotification, error) {
	return nil, nil
}
func (stubNotificationRepo) UpdateContent(context.Context, int64, string, string) (int64, error) {
	return 1, nil
}
func (stubNotificationRepo) Delete(context.Context, int64) error { return nil }

type stubDocumentRepo struct{}

func (stubDocumentRepo) CreateStaffDocument(_ context.Context, doc *domain.StaffDocument) error {
	doc.ID = 1
	return nil
}
func (stubDocumentRepo) ListStaffDocuments(context.Context) ([]domain.StaffDocument, error) {
	return nil, nil
}
func (stubDocumentRepo) FindStaffDocumentURL(context.Context, string) (string, error) {
	return "https://cdn.example.com/fromStaff/file.pdf", nil
}
func (stubDocumentRepo) CreateAdminDocument(_ context.Context, doc *domain.AdminSharedDocument) error {
	doc.ID = 1
	return nil
}
func (stubDocumentRepo) FindAdminDocumentURL(context.Context, string) (string, error) {
	return "https://cdn.example.com/toClients/file.pdf", nil
}

type stubSalaryRepo struct{}

func (stubSalaryRepo) Create(_ context.Context, slip *domain.SalarySlip) error {
	slip.ID = 1
	return nil
}
func (stubSalaryRepo) ListByUser(context.Context, int64) ([]domain.SalarySlip, error) {
	return nil, nil
}
func (stubSalaryRepo) FindURL(context.Context, string) (string, error) { return "", nil }
func (stubSalaryRepo) FindByUserAndMonth(context.Context, int64, int, int) (*domain.SalarySlip, error) {
	return nil, nil
}

type stubTrainingRepo struct{}

func (stubTrainingRepo) Create(_ context.Context, material *domain.TrainingMaterial) error {
	material.ID = 1
	return nil
}
func (stubTrainingRepo) List(context.Context) ([]domain.TrainingMaterial, error) { return nil, nil }
func (stubTrainingRepo) GetByID(context.Context, int64) (*domain.TrainingMaterial, error) {
	return nil, nil
}
func (stubTrainingRepo) Delete(context.Context, int64) error { return nil }

func newFormRequest(t *testing.T, target string, fields map[string]string, fileName string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, form.WriteField(key, value))
	}
	if fileName != "" {
		part, err := form.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, form.FormDataContentType())
	return req
}

func newJSONRequest(target, body string) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestSubmitComplaintRespondsOK(t *testing.T) {
	handler := NewClientsHandler(service.NewClientService(stubComplaintRepo{}, stubFeedbackRepo{}, stubBlobStore{}))
	app := fiber.New()
	app.Post("/api/clients/complaint", handler.SubmitComplaint)

	req := newFormRequest(t, "/api/clients/complaint", map[string]string{
		"name":    "Client",
		"email":   "c@example.com",
		"subject": "Billing",
		"message": "Wrong invoice",
	}, "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSubmitFeedbackRespondsOK(t *testing.T) {
	handler := NewClientsHandler(service.NewClientService(stubComplaintRepo{}, stubFeedbackRepo{}, stubBlobStore{}))
	app := fiber.New()
	app.Post("/api/clients/feedback", handler.SubmitFeedback)

	resp, err := app.Test(newJSONRequest("/api/clients/feedback",
		`{"name":"Client","email":"c@example.com","message":"Great service"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSendNotificationRespondsOK(t *testing.T) {
	handler := NewNotificationsHandler(service.NewNotificationService(stubNotificationRepo{}))
	app := fiber.New()
	app.Post("/api/notifications/send", handler.Send)

	resp, err := app.Test(newJSONRequest("/api/notifications/send",
		`{"title":"Holiday","message":"Office closed Friday","recipientIds":[7]}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadEndpointsRespondOK(t *testing.T) {
	documents := NewDocumentsHandler(service.NewDocumentService(stubDocumentRepo{}, stubBlobStore{}))
	salary := NewSalaryHandler(service.NewSalaryService(stubSalaryRepo{}, stubBlobStore{}))
	training := NewTrainingHandler(service.NewTrainingService(stubTrainingRepo{}, stubBlobStore{}, zap.NewNop()))

	cases := []struct {
		name    string
		path    string
		handler fiber.Handler
		fields  map[string]string
	}{
		{"staff document", "/api/documents/staff-upload", documents.StaffUpload, map[string]string{"userId": "7", "title": "Contract"}},
		{"admin document", "/api/documents/admin-upload", documents.AdminUpload, map[string]string{"userId": "7", "title": "Policy"}},
		{"salary slip", "/api/salary/upload", salary.Upload, map[string]string{"userId": "7"}},
		{"training material", "/api/training/upload", training.Upload, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Post(tc.path, tc.handler)

			resp, err := app.Test(newFormRequest(t, tc.path, tc.fields, "file.pdf", []byte("pdf")))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}
