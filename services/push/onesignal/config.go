package onesignal

type PushMessage struct {
	AppID          string            `json:"app_id"`
	IncludeAliases IncludeAliases    `json:"include_aliases"`
	TargetChannel  string            `json:"target_channel"`
	Headings       map[string]string `json:"headings"`
	Contents       map[string]string `json:"contents"`
	AppUrl         string            `json:"app_url"`
}

type IncludeAliases struct {
	ExternalID []string `json:"external_id"`
}

// Payload: 푸시 대상(user uuid)과 문구
type Payload struct {
	PushUserList []string `json:"push_user_list"`
	Header       string   `json:"header"`
	Content      string   `json:"content"`
	Url          string   `json:"url"`
}

const defaultEndpoint = "https://onesignal.com/api/v1/notifications"
