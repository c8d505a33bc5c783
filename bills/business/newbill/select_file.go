package newbill

import (
	"context"
	"strings"

	"encore.dev/rlog"

	"encore.app/bills/store"
)

// allowedExtensions is the fixed allow-set for supporting documents.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// CheckFileExtension reports whether fileName carries an allowed supporting
// document extension. The extension is the substring after the last '.',
// compared case-insensitively; a name without one fails the check.
func CheckFileExtension(fileName string) bool {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(fileName[idx+1:])]
}

// SelectFile validates the chosen file locally and, when accepted, uploads it
// to open a draft record. A validation failure never reaches the network and
// leaves the draft untouched. On upload failure the draft is cleared before
// the store's error is returned, so the caller observes both the error and a
// consistent all-null draft.
func (w *Workflow) SelectFile(ctx context.Context, fileName string, content []byte) error {
	if !CheckFileExtension(fileName) {
		return ErrInvalidFileType
	}

	if err := w.submission.TransitionToFileValidated(); err != nil {
		return err
	}
	if err := w.submission.TransitionToUploading(); err != nil {
		return err
	}

	result, err := w.billStore.Create(ctx, store.CreateParams{
		Email:    w.user.Email,
		FileName: fileName,
		Data:     content,
	})
	if err != nil {
		w.resetDraft()
		rlog.Error("bill file upload failed", "instance", w.instanceID, "file", fileName, "error", err)
		return err
	}

	w.draft.Set(result.BillID, result.FileURL, fileName, result.Key)
	return w.submission.TransitionToDraftReady()
}

// resetDraft clears the draft and returns the submission to idle after a
// failed upload or commit.
func (w *Workflow) resetDraft() {
	w.draft.Reset()
	if err := w.submission.Reset(); err != nil {
		rlog.Warn("submission reset out of order", "instance", w.instanceID, "state", string(w.submission.State()))
	}
}
