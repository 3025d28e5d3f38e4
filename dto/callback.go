package dto

// CallbackPayloadDTO documents the nested payload shape of an inbound callback.
// The handler reads it loosely (any missing level becomes empty notes), so this
// type exists for API consumers and swagger, not for strict binding.
type CallbackPayloadDTO struct {
	Text string `json:"text" example:"Notes to turn into a blog post"`
}

type CallbackRequestDTO struct {
	Payload *CallbackPayloadDTO `json:"payload,omitempty"`
}

// CallbackResponseDTO carries the rendered blog post HTML fragment.
type CallbackResponseDTO struct {
	BlogPost string `json:"blog_post" example:"<h2>Blog Post</h2><p>hello</p>"`
}

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid request body"`
}
