package request

// ListPaymentsQuery carries the listing query parameters. Page and size are
// 1-based; gin fills the defaults when the parameters are absent.
type ListPaymentsQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"`
	Size   int    `form:"size,default=10"`
}
