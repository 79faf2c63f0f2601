package paypal

type createPaymentBody struct {
	Intent       string        `json:"intent"`
	Payer        payer         `json:"payer"`
	RedirectURLs redirectURLs  `json:"redirect_urls"`
	Transactions []transaction `json:"transactions"`
}

type payer struct {
	PaymentMethod string `json:"payment_method"`
}

type redirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type amount struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type transaction struct {
	Amount           amount            `json:"amount"`
	Description      string            `json:"description,omitempty"`
	Custom           string            `json:"custom,omitempty"`
	RelatedResources []relatedResource `json:"related_resources,omitempty"`
}

type relatedResource struct {
	Sale *sale `json:"sale,omitempty"`
}

type sale struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

type executeBody struct {
	PayerID string `json:"payer_id"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type paymentResponse struct {
	ID           string        `json:"id"`
	State        string        `json:"state"`
	Transactions []transaction `json:"transactions"`
	Links        []link        `json:"links"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// errorResponse covers both the payments error shape and the OAuth one.
type errorResponse struct {
	Name             string `json:"name"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
