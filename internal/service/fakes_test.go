package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WebArtifcatsind/my-project-backend/internal/ai"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

type fakeBlobStore struct {
	baseURL   string
	uploadErr error
	deleteErr error
	uploaded  []string
	deleted   []string
	log       *[]string
}

func (f *fakeBlobStore) Upload(_ context.Context, folder, originalName string, _ []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := fmt.Sprintf("%s/%s/%s", f.baseURL, folder, originalName)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, fileURL string) error {
	if f.log != nil {
		*f.log = append(*f.log, "blob-delete")
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	err  error
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeUserRepo) ListStaff(ctx context.Context) ([]domain.User, error) {
	all, _ := f.List(ctx)
	result := all[:0]
	for _, user := range all {
		if user.Role == domain.RoleStaff {
			result = append(result, user)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for email, user := range f.users {
		if user.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeUserRepo) SetOTP(_ context.Context, email, otp string, expiry time.Time) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.OTP = &otp
	user.OTPExpiry = &expiry
	return 1, nil
}

func (f *fakeUserRepo) GetByEmailAndValidOTP(_ context.Context, email, otp string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok || user.OTP == nil || *user.OTP != otp {
		return nil, pgx.ErrNoRows
	}
	if user.OTPExpiry == nil || user.OTPExpiry.Before(time.Now()) {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, email, passwordHash string) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.PasswordHash = passwordHash
	user.OTP = nil
	user.OTPExpiry = nil
	return 1, nil
}

type fakeAttendanceRepo struct {
	records     map[string]*domain.AttendanceRecord
	upsertCalls int
	nextID      int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]*domain.AttendanceRecord{}, nextID: 1}
}

func attendanceKey(userID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", userID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, userID int64, date time.Time, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	f.upsertCalls++
	key := attendanceKey(userID, date)
	if existing, ok := f.records[key]; ok {
		existing.Status = status
		copied := *existing
		return &copied, nil
	}
	record := &domain.AttendanceRecord{ID: f.nextID, UserID: userID, Date: date, Status: status}
	f.nextID++
	f.records[key] = record
	copied := *record
	return &copied, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date *time.Time) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for _, record := range f.records {
		if date == nil || record.Date.Equal(*date) {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, userID int64) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for _, record := range f.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByUserMonth(_ context.Context, userID int64, year, month int) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for _, record := range f.records {
		if record.UserID == userID && record.Date.Year() == year && int(record.Date.Month()) == month {
			result = append(result, *record)
		}
	}
	return result, nil
}

type fakeLeaveRepo struct {
	requests       []domain.LeaveRequest
	updateAffected int64
	updatedStatus  domain.LeaveStatus
	nextID         int64
}

func (f *fakeLeaveRepo) Create(_ context.Context, request *domain.LeaveRequest) error {
	f.nextID++
	request.ID = f.nextID
	request.CreatedAt = time.Now()
	f.requests = append(f.requests, *request)
	return nil
}

func (f *fakeLeaveRepo) ListAll(_ context.Context) ([]domain.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeLeaveRepo) ListByStaff(_ context.Context, staffID int64) ([]domain.LeaveRequest, error) {
	var result []domain.LeaveRequest
	for _, request := range f.requests {
		if request.StaffID == staffID {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ int64, status domain.LeaveStatus) (int64, error) {
	f.updatedStatus = status
	return f.updateAffected, nil
}

type fakeDocumentRepo struct {
	staffDocs []domain.StaffDocument
	adminDocs []domain.AdminSharedDocument
}

func (f *fakeDocumentRepo) CreateStaffDocument(_ context.Context, doc *domain.StaffDocument) error {
	doc.ID = int64(len(f.staffDocs) + 1)
	doc.CreatedAt = time.Now()
	f.staffDocs = append(f.staffDocs, *doc)
	return nil
}

func (f *fakeDocumentRepo) ListStaffDocuments(_ context.Context) ([]domain.StaffDocument, error) {
	return f.staffDocs, nil
}

func (f *fakeDocumentRepo) FindStaffDocumentURL(_ context.Context, fragment string) (string, error) {
	for _, doc := range f.staffDocs {
		if strings.HasSuffix(doc.FileURL, fragment) {
			return doc.FileURL, nil
		}
	}
	return "", pgx.ErrNoRows
}

func (f *fakeDocumentRepo) CreateAdminDocument(_ context.Context, doc *domain.AdminSharedDocument) error {
	doc.ID = int64(len(f.adminDocs) + 1)
	doc.CreatedAt = time.Now()
	f.adminDocs = append(f.adminDocs, *doc)
	return nil
}

func (f *fakeDocumentRepo) FindAdminDocumentURL(_ context.Context, fragment string) (string, error) {
	for _, doc := range f.adminDocs {
		if strings.HasSuffix(doc.FileURL, fragment) {
			return doc.FileURL, nil
		}
	}
	return "", pgx.ErrNoRows
}

type fakeSalaryRepo struct {
	slips []domain.SalarySlip
}

func (f *fakeSalaryRepo) Create(_ context.Context, slip *domain.SalarySlip) error {
	slip.ID = int64(len(f.slips) + 1)
	if slip.UploadedAt.IsZero() {
		slip.UploadedAt = time.Now()
	}
	f.slips = append(f.slips, *slip)
	return nil
}

func (f *fakeSalaryRepo) ListByUser(_ context.Context, userID int64) ([]domain.SalarySlip, error) {
	var result []domain.SalarySlip
	for _, slip := range f.slips {
		if slip.UserID == userID {
			result = append(result, slip)
		}
	}
	return result, nil
}

func (f *fakeSalaryRepo) FindURL(_ context.Context, fragment string) (string, error) {
	for _, slip := range f.slips {
		if strings.HasSuffix(slip.FileURL, fragment) {
			return slip.FileURL, nil
		}
	}
	return "", pgx.ErrNoRows
}

func (f *fakeSalaryRepo) FindByUserAndMonth(_ context.Context, userID int64, year, month int) (*domain.SalarySlip, error) {
	for _, slip := range f.slips {
		if slip.UserID == userID && slip.UploadedAt.Year() == year && int(slip.UploadedAt.Month()) == month {
			copied := slip
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeTrainingRepo struct {
	materials map[int64]domain.TrainingMaterial
	nextID    int64
	log       *[]string
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{materials: map[int64]domain.TrainingMaterial{}, nextID: 1}
}

func (f *fakeTrainingRepo) Create(_ context.Context, material *domain.TrainingMaterial) error {
	material.ID = f.nextID
	material.UploadedAt = time.Now()
	f.nextID++
	f.materials[material.ID] = *material
	return nil
}

func (f *fakeTrainingRepo) List(_ context.Context) ([]domain.TrainingMaterial, error) {
	result := make([]domain.TrainingMaterial, 0, len(f.materials))
	for _, material := range f.materials {
		result = append(result, material)
	}
	return result, nil
}

func (f *fakeTrainingRepo) GetByID(_ context.Context, id int64) (*domain.TrainingMaterial, error) {
	material, ok := f.materials[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &material, nil
}

func (f *fakeTrainingRepo) Delete(_ context.Context, id int64) error {
	if f.log != nil {
		*f.log = append(*f.log, "row-delete")
	}
	if _, ok := f.materials[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.materials, id)
	return nil
}

type fakeComplaintRepo struct {
	complaints      []domain.Complaint
	assignAffected  int64
	resolveAffected int64
	hideAffected    int64
	deleteErr       error
}

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	complaint.ID = int64(len(f.complaints) + 1)
	complaint.Status = domain.ComplaintOpen
	complaint.VisibleToStaff = true
	complaint.SubmittedAt = time.Now()
	f.complaints = append(f.complaints, *complaint)
	return nil
}

func (f *fakeComplaintRepo) ListAll(_ context.Context) ([]domain.Complaint, error) {
	return f.complaints, nil
}

func (f *fakeComplaintRepo) Assign(_ context.Context, _, _ int64) (int64, error) {
	return f.assignAffected, nil
}

func (f *fakeComplaintRepo) ListAssignedVisible(_ context.Context, staffID int64) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for _, complaint := range f.complaints {
		if complaint.AssignedTo != nil && *complaint.AssignedTo == staffID && complaint.VisibleToStaff {
			result = append(result, complaint)
		}
	}
	return result, nil
}

func (f *fakeComplaintRepo) MarkResolved(_ context.Context, _ int64) (int64, error) {
	return f.resolveAffected, nil
}

func (f *fakeComplaintRepo) HideFromStaff(_ context.Context, _, _ int64) (int64, error) {
	return f.hideAffected, nil
}

func (f *fakeComplaintRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeFeedbackRepo struct {
	items             []domain.Feedback
	setPublicAffected int64
	deleteErr         error
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	feedback.ID = int64(len(f.items) + 1)
	feedback.IsPublic = false
	feedback.SubmittedAt = time.Now()
	f.items = append(f.items, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListAll(_ context.Context) ([]domain.Feedback, error) {
	return f.items, nil
}

func (f *fakeFeedbackRepo) SetPublic(_ context.Context, id int64, public bool) (int64, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsPublic = public
		}
	}
	return f.setPublicAffected, nil
}

func (f *fakeFeedbackRepo) ListPublic(_ context.Context) ([]domain.PublicFeedback, error) {
	var result []domain.PublicFeedback
	for _, item := range f.items {
		if item.IsPublic {
			result = append(result, domain.PublicFeedback{
				Name:        item.Name,
				Message:     item.Message,
				SubmittedAt: item.SubmittedAt,
			})
		}
	}
	return result, nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeNotificationRepo struct {
	created        *domain.Notification
	recipients     []int64
	markReadCalls  int
	markAllCalls   int
	updateAffected int64
	deleteErr      error
	inbox          []domain.StaffNotification
}

func (f *fakeNotificationRepo) CreateWithRecipients(_ context.Context, notification *domain.Notification, recipientIDs []int64) error {
	notification.ID = 1
	notification.CreatedAt = time.Now()
	f.created = notification
	f.recipients = recipientIDs
	return nil
}

func (f *fakeNotificationRepo) ListForStaff(_ context.Context, _ int64) ([]domain.StaffNotification, error) {
	return f.inbox, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ int64) error {
	f.markReadCalls++
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ int64) error {
	f.markAllCalls++
	return nil
}

func (f *fakeNotificationRepo) ListAll(_ context.Context) ([]domain.AdminNotification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) UpdateContent(_ context.Context, _ int64, _, _ string) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeContactRepo struct {
	created []domain.ContactMessage
	err     error
}

func (f *fakeContactRepo) Create(_ context.Context, contact *domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	contact.ID = int64(len(f.created) + 1)
	contact.CreatedAt = time.Now()
	f.created = append(f.created, *contact)
	return nil
}

type fakeChatClient struct {
	reply      string
	err        error
	gotHistory []ai.Message
	gotMessage string
}

func (f *fakeChatClient) Complete(_ context.Context, history []ai.Message, message string) (string, error) {
	f.gotHistory = history
	f.gotMessage = message
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeHistoryStore struct {
	data    map[string][]ai.Message
	saveErr error
	resets  []string
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{data: map[string][]ai.Message{}}
}

func (f *fakeHistoryStore) Load(_ context.Context, sessionID string) ([]ai.Message, error) {
	return f.data[sessionID], nil
}

func (f *fakeHistoryStore) Save(_ context.Context, sessionID string, history []ai.Message) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[sessionID] = history
	return nil
}

func (f *fakeHistoryStore) Reset(_ context.Context, sessionID string) error {
	f.resets = append(f.resets, sessionID)
	delete(f.data, sessionID)
	return nil
}
