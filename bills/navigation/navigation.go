// Package navigation holds the navigation collaborator contract: the
// submission workflow asks for a view change, some caller-owned router
// performs it.
package navigation

// Route paths registered with the router.
const (
	BillsPath   = "/employee/bills"
	NewBillPath = "/employee/bill/new"
)

// Navigator replaces the current view with the one registered for pathname.
// The call is synchronous and its result is never consumed by the workflow.
type Navigator interface {
	Navigate(pathname string)
}

// Recorder is a Navigator that remembers the last requested path. The API
// layer uses one per submission to turn a workflow-triggered navigation into
// a redirect in the response.
type Recorder struct {
	last string
}

func (r *Recorder) Navigate(pathname string) {
	r.last = pathname
}

// LastPath returns the most recently requested path, or "" when no navigation
// has happened.
func (r *Recorder) LastPath() string {
	return r.last
}
