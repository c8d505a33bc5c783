package model

// UploadDraft is the ephemeral state owned by one submission workflow
// instance. The four fields are populated together on a successful upload and
// cleared together on any upload or commit failure; they are never partially
// set.
type UploadDraft struct {
	BillID     *string `json:"bill_id"`
	FileURL    *string `json:"file_url"`
	FileName   *string `json:"file_name"`
	StorageKey *string `json:"storage_key"`
}

// Set populates all four fields from a successful upload response.
func (d *UploadDraft) Set(billID, fileURL, fileName, storageKey string) {
	d.BillID = &billID
	d.FileURL = &fileURL
	d.FileName = &fileName
	d.StorageKey = &storageKey
}

// Reset clears all four fields.
func (d *UploadDraft) Reset() {
	d.BillID = nil
	d.FileURL = nil
	d.FileName = nil
	d.StorageKey = nil
}

// Populated reports whether the draft holds a completed upload.
func (d *UploadDraft) Populated() bool {
	return d.BillID != nil && d.FileURL != nil && d.FileName != nil && d.StorageKey != nil
}
