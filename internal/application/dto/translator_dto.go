package dto

// TranslationResponse resultado de traducir un PDF (format=json).
type TranslationResponse struct {
	FileName       string `json:"file_name"`
	TargetLanguage string `json:"target_language"`
	Provider       string `json:"provider"`
	Text           string `json:"text"`
	DownloadName   string `json:"download_name"`
}
