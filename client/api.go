package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"autoparts-invoicing/models"
)

// ---- Auth

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.request(ctx, http.MethodPost, "/auth/login", models.LoginInput{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) CheckAuth(ctx context.Context) (*models.AuthCheck, error) {
	var out models.AuthCheck
	if err := c.request(ctx, http.MethodGet, "/auth/check", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.UserInfo, error) {
	var out models.UserInfo
	if err := c.request(ctx, http.MethodGet, "/auth/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Business profile

func (c *Client) BusinessInfo(ctx context.Context) (*models.BusinessInfo, error) {
	var out models.BusinessInfo
	if err := c.request(ctx, http.MethodGet, "/business", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveBusinessInfo(ctx context.Context, input models.BusinessInput) (*models.BusinessInfo, error) {
	var out models.BusinessInfo
	if err := c.request(ctx, http.MethodPut, "/business", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Customers

func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.request(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	var out models.Customer
	if err := c.request(ctx, http.MethodPost, "/customers", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id uint, input models.CustomerUpdate) (*models.Customer, error) {
	var out models.Customer
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id uint) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}

// ---- Invoices

// InvoiceFilter narrows GET /invoices; zero values are omitted and the
// criteria combine with AND.
type InvoiceFilter struct {
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Status     models.InvoiceStatus
	CustomerID uint
	Page       int
	PerPage    int
}

func (f InvoiceFilter) encode() string {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.CustomerID != 0 {
		q.Set("customer_id", strconv.FormatUint(uint64(f.CustomerID), 10))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) Invoices(ctx context.Context, filter InvoiceFilter) (*models.InvoiceList, error) {
	var out models.InvoiceList
	if err := c.request(ctx, http.MethodGet, "/invoices"+filter.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Invoice(ctx context.Context, id uint) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, input models.InvoiceInput) (*models.InvoiceCreated, error) {
	var out struct {
		Message string                `json:"message"`
		Data    models.InvoiceCreated `json:"data"`
	}
	if err := c.request(ctx, http.MethodPost, "/invoices", input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id uint, input models.InvoiceUpdate) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/invoices/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadInvoicePDF fetches the rendered PDF and writes it to destPath,
// the local equivalent of a browser save-as.
func (c *Client) DownloadInvoicePDF(ctx context.Context, id uint, destPath string) error {
	data, err := c.download(ctx, fmt.Sprintf("/invoices/%d/pdf", id))
	if err != nil {
		return err
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return &RequestError{Message: "could not save PDF: " + err.Error()}
	}
	return nil
}

// ---- Dashboard

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.request(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
