package response_models

type LocaleInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

type LanguageState struct {
	Language  string `json:"language"`
	Direction string `json:"direction"`
	Ready     bool   `json:"ready"`
}
