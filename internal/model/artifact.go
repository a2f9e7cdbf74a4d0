package model

// Output name suffixes
const (
	ConvertedSuffix = "_converted"
	CroppedSuffix   = "_cropped"
)

// CropFormat is the fixed output format of crop jobs
const CropFormat = FormatMP4

// OutputArtifact is the result of a successful job. It lives only while the
// result view is shown and must be revoked when replaced or cleared.
type OutputArtifact struct {
	Name     string // suggested download file name
	Format   Format
	MIMEType string
	URL      string // revocable object URL (file:// URI)
	Path     string // backing file
	Size     int64
}

// IsPlayable reports whether the artifact can be played back inline
func (a *OutputArtifact) IsPlayable() bool {
	return a != nil && a.Format.IsBrowserPlayable()
}

// ConvertedName returns "<basename>_converted.<target>"
func ConvertedName(sourceName string, target Format) string {
	return BaseName(sourceName) + ConvertedSuffix + "." + string(target)
}

// CroppedName returns "<basename>_cropped.mp4"
func CroppedName(sourceName string) string {
	return BaseName(sourceName) + CroppedSuffix + "." + string(CropFormat)
}
