package models

// CloudBookmark points at an external cloud-storage web page.
// Viewing is delegated to the user's browser.
type CloudBookmark struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultCloudBookmarks lists the built-in cloud services.
func DefaultCloudBookmarks() []CloudBookmark {
	return []CloudBookmark{
		{ID: "1", Name: "Google Drive", URL: "https://drive.google.com"},
		{ID: "2", Name: "Dropbox", URL: "https://www.dropbox.com"},
		{ID: "3", Name: "OneDrive", URL: "https://onedrive.live.com"},
		{ID: "4", Name: "Mega", URL: "https://mega.nz"},
	}
}
