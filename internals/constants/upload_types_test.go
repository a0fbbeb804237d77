package constants

import "testing"

func TestIsAllowedUploadExt(t *testing.T) {
	allowed := []string{"proof.pdf", "id.JPG", "letter.docx", "notes.txt", "scan.jpeg", "photo.png", "old.doc"}
	for _, name := range allowed {
		if !IsAllowedUploadExt(name) {
			t.Errorf("%s rejected, want allowed", name)
		}
	}

	rejected := []string{"malware.exe", "archive.zip", "page.html", "noext", "script.sh"}
	for _, name := range rejected {
		if IsAllowedUploadExt(name) {
			t.Errorf("%s allowed, want rejected", name)
		}
	}
}

func TestIsAllowedUploadMime(t *testing.T) {
	allowed := []string{"image/png", "image/webp", "application/pdf", "text/plain", "application/msword"}
	for _, m := range allowed {
		if !IsAllowedUploadMime(m) {
			t.Errorf("%s rejected, want allowed", m)
		}
	}

	rejected := []string{"application/zip", "text/html", "application/octet-stream"}
	for _, m := range rejected {
		if IsAllowedUploadMime(m) {
			t.Errorf("%s allowed, want rejected", m)
		}
	}
}
