package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado fail/success
	Message string      `json:"message,omitempty"` //mensaje de error
	Warning string      `json:"warning,omitempty"` //falla no fatal de un efecto secundario (correo/acta)
	Data    interface{} `json:"data,omitempty"`    //datos de la respuesta
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //total de registros según el filtro
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewResponseWithWarning(data interface{}, warning string) Response {
	return Response{
		Status:  "success",
		Warning: warning,
		Data:    data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // registros por página
	Page  int `json:"page"`  // página (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
