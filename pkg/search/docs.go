// Package search proxies medical literature searches to Google Custom Search and questions to an
// OpenAI chat model.
package search

// swagger:response SearchResponse
type _ struct {
	// in: body
	Body SearchResponse
}

// swagger:response AnswerResponse
type _ struct {
	// in: body
	Body AnswerResponse
}

// swagger:parameters webSearch aiSearch
type _ struct {
	// in: body
	// required: true
	Body Request
}
