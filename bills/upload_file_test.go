package bills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/bills/business/newbill"
	"encore.app/bills/domain"
	"encore.app/bills/mocks/store/bill_store"
	"encore.app/bills/model"
	"encore.app/bills/store"
)

func newTestService(t *testing.T) (*Service, *bill_store.MockBillStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := bill_store.NewMockBillStore(ctrl)
	service := &Service{
		billStore:   mockStore,
		submissions: make(map[string]*submission),
	}
	return service, mockStore
}

func TestUploadBillFile(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Create(gomock.Any(), store.CreateParams{
			Email:    "employee@test.tld",
			FileName: "receipt.png",
			Data:     []byte("png-bytes"),
		}).
		Return(store.CreateResult{Key: "k1", FileURL: "https://x/k1", BillID: "b1"}, nil).
		Times(1)

	response, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.png",
		Content:   []byte("png-bytes"),
	})

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, "b1", response.BillID)
	assert.Equal(t, "https://x/k1", response.FileURL)
	assert.Equal(t, "receipt.png", response.FileName)
}

func TestUploadBillFileInvalidExtension(t *testing.T) {
	service, _ := newTestService(t)

	response, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.pdf",
		Content:   []byte("%PDF"),
	})

	assert.Nil(t, response)
	assert.Equal(t, newbill.ErrInvalidFileType, err)
}

func TestUploadBillFileStoreFailure(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(store.CreateResult{}, &store.TransportError{Status: 500}).
		Times(1)

	response, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.png",
		Content:   []byte("png-bytes"),
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.Equal(t, "Erreur 500", err.Error())

	// The failed upload leaves the submission idle so the user can retry.
	sub := service.submissions["employee@test.tld"]
	assert.NotNil(t, sub)
	assert.Equal(t, domain.SubmissionIdle, sub.workflow.State())
}

func TestUploadBillFileReusesSubmission(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(store.CreateResult{Key: "k1", FileURL: "https://x/k1", BillID: "b1"}, nil).
		Times(1)

	_, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.png",
		Content:   []byte("png-bytes"),
	})
	assert.NoError(t, err)

	user := model.User{Type: model.UserTypeEmployee, Email: "employee@test.tld"}
	first := service.submissions["employee@test.tld"]
	assert.Same(t, first, service.submissionFor(user))
}

func TestUploadBillFileRequestValidation(t *testing.T) {
	testCases := []struct {
		name      string
		request   *UploadBillFileRequest
		expectErr bool
	}{
		{
			name: "valid_request",
			request: &UploadBillFileRequest{
				UserEmail: "employee@test.tld",
				FileName:  "receipt.png",
				Content:   []byte{1},
			},
		},
		{
			name: "missing_email",
			request: &UploadBillFileRequest{
				FileName: "receipt.png",
				Content:  []byte{1},
			},
			expectErr: true,
		},
		{
			name: "missing_file_name",
			request: &UploadBillFileRequest{
				UserEmail: "employee@test.tld",
				Content:   []byte{1},
			},
			expectErr: true,
		},
		{
			name: "empty_content",
			request: &UploadBillFileRequest{
				UserEmail: "employee@test.tld",
				FileName:  "receipt.png",
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
