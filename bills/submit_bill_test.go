package bills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/bills/model"
	"encore.app/bills/navigation"
	"encore.app/bills/store"
)

func TestSubmitBill(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(store.CreateResult{Key: "k1", FileURL: "https://x/k1", BillID: "b1"}, nil).
		Times(1)

	mockStore.EXPECT().
		Update(gomock.Any(), "b1", store.UpdatePatch{
			Email:      "employee@test.tld",
			Type:       "Transports",
			Name:       "Vol Paris Londres",
			Amount:     348,
			Date:       "2004-04-04",
			VAT:        "70",
			Pct:        20,
			Commentary: "séminaire billed",
			FileURL:    "https://x/k1",
			FileName:   "receipt.png",
			Status:     string(model.BillStatusPending),
		}).
		Return(model.BillRecord{ID: "b1"}, nil).
		Times(1)

	_, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.png",
		Content:   []byte("png-bytes"),
	})
	assert.NoError(t, err)

	response, err := service.SubmitBill(context.Background(), &SubmitBillRequest{
		UserEmail:  "employee@test.tld",
		Type:       "Transports",
		Name:       "Vol Paris Londres",
		Amount:     348,
		Date:       "2004-04-04",
		VAT:        "70",
		Pct:        20,
		Commentary: "séminaire billed",
	})

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, navigation.BillsPath, response.RedirectTo)

	// The submission is terminal: the registry entry is gone and the next
	// request gets a fresh workflow.
	assert.Empty(t, service.submissions)
}

func TestSubmitBillStoreFailure(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(store.CreateResult{Key: "k1", FileURL: "https://x/k1", BillID: "b1"}, nil).
		Times(1)

	mockStore.EXPECT().
		Update(gomock.Any(), "b1", gomock.Any()).
		Return(model.BillRecord{}, &store.TransportError{Status: 500}).
		Times(1)

	_, err := service.UploadBillFile(context.Background(), &UploadBillFileRequest{
		UserEmail: "employee@test.tld",
		FileName:  "receipt.png",
		Content:   []byte("png-bytes"),
	})
	assert.NoError(t, err)

	response, err := service.SubmitBill(context.Background(), &SubmitBillRequest{
		UserEmail: "employee@test.tld",
		Type:      "Transports",
		Name:      "Vol Paris Londres",
		Amount:    348,
		Date:      "2004-04-04",
		Pct:       20,
	})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.Equal(t, "Erreur 500", err.Error())

	// The failed commit keeps the submission around, reset to idle.
	sub := service.submissions["employee@test.tld"]
	assert.NotNil(t, sub)
	assert.Empty(t, sub.nav.LastPath())
}

func TestSubmitBillWithoutUpload(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().
		Update(gomock.Any(), "", store.UpdatePatch{
			Email:  "employee@test.tld",
			Type:   "Services en ligne",
			Name:   "Abonnement",
			Amount: 10,
			Date:   "2004-04-04",
			Pct:    20,
			Status: string(model.BillStatusPending),
		}).
		Return(model.BillRecord{}, nil).
		Times(1)

	response, err := service.SubmitBill(context.Background(), &SubmitBillRequest{
		UserEmail: "employee@test.tld",
		Type:      "Services en ligne",
		Name:      "Abonnement",
		Amount:    10,
		Date:      "2004-04-04",
		Pct:       20,
	})

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, navigation.BillsPath, response.RedirectTo)
}

func TestSubmitBillRequestValidation(t *testing.T) {
	valid := func() *SubmitBillRequest {
		return &SubmitBillRequest{
			UserEmail: "employee@test.tld",
			Type:      "Transports",
			Name:      "Vol Paris Londres",
			Amount:    348,
			Date:      "2004-04-04",
			Pct:       20,
		}
	}

	testCases := []struct {
		name      string
		mutate    func(*SubmitBillRequest)
		expectErr bool
	}{
		{
			name:   "valid_request",
			mutate: func(r *SubmitBillRequest) {},
		},
		{
			name:      "missing_email",
			mutate:    func(r *SubmitBillRequest) { r.UserEmail = "" },
			expectErr: true,
		},
		{
			name:      "missing_type",
			mutate:    func(r *SubmitBillRequest) { r.Type = "" },
			expectErr: true,
		},
		{
			name:      "zero_amount",
			mutate:    func(r *SubmitBillRequest) { r.Amount = 0 },
			expectErr: true,
		},
		{
			name:      "negative_amount",
			mutate:    func(r *SubmitBillRequest) { r.Amount = -10 },
			expectErr: true,
		},
		{
			name:      "malformed_date",
			mutate:    func(r *SubmitBillRequest) { r.Date = "04/04/2004" },
			expectErr: true,
		},
		{
			name:      "pct_out_of_range",
			mutate:    func(r *SubmitBillRequest) { r.Pct = 120 },
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := valid()
			tc.mutate(request)

			err := request.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
