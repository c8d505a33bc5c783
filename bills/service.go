package bills

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"encore.dev/config"
	"encore.dev/rlog"

	"encore.app/bills/business/billlist"
	"encore.app/bills/business/newbill"
	"encore.app/bills/model"
	"encore.app/bills/navigation"
	"encore.app/bills/store"
	"encore.app/bills/store/rest"
)

var validate = validator.New()

type Config struct {
	// RecordStoreURL is the base URL of the remote record store.
	RecordStoreURL config.String
}

var cfg *Config = config.Load[*Config]()

var secrets struct {
	RecordStoreToken string // bearer token for the remote record store
}

// submission pairs one user's workflow instance with the recorder that
// captures its navigation, so a commit can be answered with a redirect.
type submission struct {
	workflow *newbill.Workflow
	nav      *navigation.Recorder
}

//encore:service
type Service struct {
	listing   billlist.Business
	billStore store.BillStore

	// submissions holds at most one in-progress bill submission per user,
	// the server-side analog of one creation-page visit. The workflows
	// themselves need no locking; the registry does.
	mu          sync.Mutex
	submissions map[string]*submission
}

func initService() (*Service, error) {
	client := rest.NewClient(cfg.RecordStoreURL(), secrets.RecordStoreToken)

	rlog.Info("initializing bills service", "store_url", cfg.RecordStoreURL())

	return &Service{
		listing:     billlist.NewBusiness(client),
		billStore:   client,
		submissions: make(map[string]*submission),
	}, nil
}

// submissionFor returns the in-progress submission for user, creating an idle
// one on first use.
func (s *Service) submissionFor(user model.User) *submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.submissions[user.Email]; ok {
		return sub
	}

	rec := &navigation.Recorder{}
	sub := &submission{
		workflow: newbill.NewWorkflow(user, s.billStore, rec),
		nav:      rec,
	}
	s.submissions[user.Email] = sub
	return sub
}

// dropSubmission discards a user's workflow instance. Called after a commit,
// when the workflow is terminal.
func (s *Service) dropSubmission(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submissions, email)
}
