package domain

// DTOs in this package mirror the backend JSON contracts. The terminal never
// owns these records: each value is produced by one response and replaced by
// the next fetch. Amounts are rupees as the backend serializes them.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PinLoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type UserInfo struct {
	ID                int      `json:"id"`
	Username          string   `json:"username"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Permissions       []string `json:"permissions"`
	PreferredLanguage string   `json:"preferred_language"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        UserInfo `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UnitOfMeasure struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type Category struct {
	ID     int    `json:"id,omitempty"`
	NameEn string `json:"name_en,omitempty"`
	NameSi string `json:"name_si,omitempty"`
	NameTa string `json:"name_ta,omitempty"`
}

type ProductResponse struct {
	ID               int            `json:"id"`
	NameEn           string         `json:"name_en"`
	NameSi           string         `json:"name_si,omitempty"`
	NameTa           string         `json:"name_ta,omitempty"`
	SKU              string         `json:"sku,omitempty"`
	Barcode          string         `json:"barcode,omitempty"`
	CategoryID       *int           `json:"category_id,omitempty"`
	UnitOfMeasureID  int            `json:"unit_of_measure_id"`
	SupplierID       *int           `json:"supplier_id,omitempty"`
	CostPrice        float64        `json:"cost_price"`
	SellingPrice     float64        `json:"selling_price"`
	WholesalePrice   *float64       `json:"wholesale_price,omitempty"`
	SpecialPrice     *float64       `json:"special_price,omitempty"`
	IsNegotiable     bool           `json:"is_negotiable"`
	MinSellingPrice  *float64       `json:"min_selling_price,omitempty"`
	CurrentStock     float64        `json:"current_stock"`
	MinimumStock     float64        `json:"minimum_stock"`
	ReorderLevel     *float64       `json:"reorder_level,omitempty"`
	IsActive         bool           `json:"is_active"`
	IsService        bool           `json:"is_service"`
	TrackInventory   bool           `json:"track_inventory"`
	TaxRate          float64        `json:"tax_rate"`
	TaxInclusive     bool           `json:"tax_inclusive"`
	ShortDescription string         `json:"short_description,omitempty"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	Category         *Category      `json:"category,omitempty"`
	UnitOfMeasure    *UnitOfMeasure `json:"unit_of_measure,omitempty"`
}

type ProductFilter struct {
	Search     string
	CategoryID *int
	Barcode    string
	ActiveOnly bool
	Limit      int
}

type CustomerResponse struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email,omitempty"`
	Address           string  `json:"address,omitempty"`
	AreaVillage       string  `json:"area_village"`
	CreditLimit       float64 `json:"credit_limit"`
	CurrentBalance    float64 `json:"current_balance"`
	PaymentTermsDays  int     `json:"payment_terms_days"`
	WhatsAppOptIn     bool    `json:"whatsapp_opt_in"`
	PreferredLanguage string  `json:"preferred_language"`
	LastPaymentDate   string  `json:"last_payment_date,omitempty"`
	DaysOverdue       int     `json:"days_overdue"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type CustomerCreateRequest struct {
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email,omitempty"`
	Address           string  `json:"address,omitempty"`
	AreaVillage       string  `json:"area_village"`
	CreditLimit       float64 `json:"credit_limit"`
	PaymentTermsDays  int     `json:"payment_terms_days"`
	WhatsAppOptIn     bool    `json:"whatsapp_opt_in"`
	PreferredLanguage string  `json:"preferred_language"`
}

type CustomerCreditInfo struct {
	CustomerID       int     `json:"customer_id"`
	CreditLimit      float64 `json:"credit_limit"`
	CurrentBalance   float64 `json:"current_balance"`
	AvailableCredit  float64 `json:"available_credit"`
	DaysOverdue      int     `json:"days_overdue"`
	LastPaymentDate  string  `json:"last_payment_date,omitempty"`
	PaymentTermsDays int     `json:"payment_terms_days"`
}

type CreditCheckResponse struct {
	Allowed         bool    `json:"allowed"`
	AvailableCredit float64 `json:"available_credit"`
	Reason          string  `json:"reason,omitempty"`
}

type SupplierResponse struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	CompanyName      string  `json:"company_name,omitempty"`
	ContactPerson    string  `json:"contact_person,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Mobile           string  `json:"mobile,omitempty"`
	Email            string  `json:"email,omitempty"`
	City             string  `json:"city,omitempty"`
	VATNumber        string  `json:"vat_number,omitempty"`
	CreditLimit      float64 `json:"credit_limit"`
	CurrentBalance   float64 `json:"current_balance"`
	PaymentTermsDays int     `json:"payment_terms_days"`
	VisitDay         string  `json:"visit_day,omitempty"`
	VisitFrequency   string  `json:"visit_frequency"`
	NextVisitDate    string  `json:"next_visit_date,omitempty"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type SupplierInvoice struct {
	ID                    int     `json:"id"`
	InvoiceNumber         string  `json:"invoice_number"`
	SupplierInvoiceNumber string  `json:"supplier_invoice_number"`
	SupplierID            int     `json:"supplier_id"`
	SupplierName          string  `json:"supplier_name"`
	InvoiceDate           string  `json:"invoice_date"`
	DueDate               string  `json:"due_date"`
	Subtotal              float64 `json:"subtotal"`
	DiscountAmount        float64 `json:"discount_amount"`
	TaxAmount             float64 `json:"tax_amount"`
	TotalAmount           float64 `json:"total_amount"`
	PaidAmount            float64 `json:"paid_amount"`
	BalanceAmount         float64 `json:"balance_amount"`
	Status                string  `json:"status"`
	PaymentStatus         string  `json:"payment_status"`
	GoodsReceived         bool    `json:"goods_received"`
	PONumber              string  `json:"po_number,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type SupplierPayment struct {
	ID            int     `json:"id"`
	PaymentNumber string  `json:"payment_number"`
	SupplierID    int     `json:"supplier_id"`
	SupplierName  string  `json:"supplier_name"`
	InvoiceID     *int    `json:"invoice_id,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Status        string  `json:"status"`
	ChequeNumber  string  `json:"cheque_number,omitempty"`
	BankName      string  `json:"bank_name,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type SupplierPaymentCreateRequest struct {
	SupplierID    int     `json:"supplier_id"`
	InvoiceID     *int    `json:"invoice_id,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	ChequeNumber  string  `json:"cheque_number,omitempty"`
	BankName      string  `json:"bank_name,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type SaleItemCreate struct {
	ProductID      int     `json:"product_id"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount"`
	Notes          string  `json:"notes,omitempty"`
}

type SaleCreateRequest struct {
	CustomerID       *int             `json:"customer_id,omitempty"`
	CustomerName     string           `json:"customer_name,omitempty"`
	Items            []SaleItemCreate `json:"items"`
	PaymentMethod    string           `json:"payment_method"`
	AmountTendered   *float64         `json:"amount_tendered,omitempty"`
	PaymentReference string           `json:"payment_reference,omitempty"`
	PaymentNotes     string           `json:"payment_notes,omitempty"`
	SaleNotes        string           `json:"sale_notes,omitempty"`
	IsCustomerMode   bool             `json:"is_customer_mode"`
}

type SaleProductInfo struct {
	ID            int            `json:"id"`
	NameEn        string         `json:"name_en"`
	NameSi        string         `json:"name_si,omitempty"`
	NameTa        string         `json:"name_ta,omitempty"`
	Barcode       string         `json:"barcode,omitempty"`
	UnitOfMeasure *UnitOfMeasure `json:"unit_of_measure,omitempty"`
}

type SaleItemResponse struct {
	ID             int             `json:"id"`
	ProductID      int             `json:"product_id"`
	Product        SaleProductInfo `json:"product"`
	Quantity       float64         `json:"quantity"`
	UnitPrice      float64         `json:"unit_price"`
	OriginalPrice  float64         `json:"original_price"`
	DiscountAmount float64         `json:"discount_amount"`
	LineTotal      float64         `json:"line_total"`
	Notes          string          `json:"notes,omitempty"`
}

type PaymentInfo struct {
	Method         string   `json:"method"`
	AmountTendered *float64 `json:"amount_tendered,omitempty"`
	Change         *float64 `json:"change,omitempty"`
	Reference      string   `json:"reference,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

type SaleTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

type SaleMetadata struct {
	IsCustomerMode bool   `json:"is_customer_mode"`
	SaleNotes      string `json:"sale_notes,omitempty"`
}

type SaleResponse struct {
	ID            int                `json:"id"`
	ReceiptNumber string             `json:"receipt_number"`
	CustomerID    *int               `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	UserID        int                `json:"user_id"`
	TerminalID    int                `json:"terminal_id"`
	Items         []SaleItemResponse `json:"items"`
	Payment       PaymentInfo        `json:"payment"`
	Totals        SaleTotals         `json:"totals"`
	Metadata      SaleMetadata       `json:"metadata"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

type DailySalesSummary struct {
	Date             string             `json:"date"`
	TotalSales       float64            `json:"total_sales"`
	TransactionCount int                `json:"transaction_count"`
	ByPaymentMethod  map[string]float64 `json:"by_payment_method"`
}

type SessionInfo struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id"`
	Username        string `json:"username"`
	UserName        string `json:"user_name"`
	UserRole        string `json:"user_role"`
	TerminalName    string `json:"terminal_name,omitempty"`
	IPAddress       string `json:"ip_address,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`
	LoginTime       string `json:"login_time"`
	LastActivity    string `json:"last_activity,omitempty"`
	IsActive        bool   `json:"is_active"`
	SessionDuration *int   `json:"session_duration,omitempty"`
}

type SessionListResponse struct {
	Sessions    []SessionInfo `json:"sessions"`
	Total       int           `json:"total"`
	ActiveCount int           `json:"active_count"`
	Page        int           `json:"page"`
	PerPage     int           `json:"per_page"`
}

type LoginHistoryEntry struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id"`
	Username        string `json:"username"`
	UserName        string `json:"user_name"`
	LoginTime       string `json:"login_time"`
	LogoutTime      string `json:"logout_time,omitempty"`
	SessionDuration *int   `json:"session_duration,omitempty"`
	TerminalName    string `json:"terminal_name,omitempty"`
	IPAddress       string `json:"ip_address,omitempty"`
	LoginMethod     string `json:"login_method"`
	LogoutReason    string `json:"logout_reason,omitempty"`
}

type LoginHistoryListResponse struct {
	History []LoginHistoryEntry `json:"history"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
}

type AuditLogEntry struct {
	ID           int            `json:"id"`
	UserID       *int           `json:"user_id,omitempty"`
	Username     string         `json:"username,omitempty"`
	EventType    string         `json:"event_type"`
	Description  string         `json:"description"`
	Severity     string         `json:"severity"`
	IPAddress    string         `json:"ip_address,omitempty"`
	TerminalName string         `json:"terminal_name,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Timestamp    string         `json:"timestamp"`
}

type AuditLogListResponse struct {
	Logs    []AuditLogEntry `json:"logs"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

type ForceLogoutRequest struct {
	SessionIDs []int  `json:"session_ids"`
	Reason     string `json:"reason"`
}

type Terminal struct {
	TerminalID       string         `json:"terminal_id"`
	TerminalName     string         `json:"terminal_name"`
	DisplayName      string         `json:"display_name,omitempty"`
	TerminalType     string         `json:"terminal_type"`
	IsMainTerminal   bool           `json:"is_main_terminal"`
	Status           string         `json:"status"`
	IPAddress        string         `json:"ip_address,omitempty"`
	Hostname         string         `json:"hostname,omitempty"`
	HardwareID       string         `json:"hardware_id,omitempty"`
	OSVersion        string         `json:"os_version,omitempty"`
	AppVersion       string         `json:"app_version,omitempty"`
	LastSeen         string         `json:"last_seen,omitempty"`
	LastHeartbeat    string         `json:"last_heartbeat,omitempty"`
	LastSyncTime     string         `json:"last_sync_time,omitempty"`
	SyncStatus       string         `json:"sync_status,omitempty"`
	PendingSyncCount int            `json:"pending_sync_count"`
	UPSConnected     bool           `json:"ups_connected"`
	UPSBatteryLevel  *int           `json:"ups_battery_level,omitempty"`
	UPSStatus        string         `json:"ups_status,omitempty"`
	Configuration    map[string]any `json:"configuration,omitempty"`
	IsOnline         bool           `json:"is_online"`
}

type TerminalConfig struct {
	TerminalID     string `json:"terminal_id,omitempty"`
	TerminalName   string `json:"terminal_name"`
	DisplayName    string `json:"display_name,omitempty"`
	TerminalType   string `json:"terminal_type"`
	IsMainTerminal bool   `json:"is_main_terminal"`
	AppVersion     string `json:"app_version"`
	NetworkPath    string `json:"network_path,omitempty"`
}

type TerminalInitRequest struct {
	TerminalID     string `json:"terminal_id,omitempty"`
	TerminalName   string `json:"terminal_name"`
	DisplayName    string `json:"display_name,omitempty"`
	TerminalType   string `json:"terminal_type"`
	IsMainTerminal bool   `json:"is_main_terminal"`
	IPAddress      string `json:"ip_address,omitempty"`
	Hostname       string `json:"hostname,omitempty"`
	HardwareID     string `json:"hardware_id,omitempty"`
	OSVersion      string `json:"os_version,omitempty"`
	AppVersion     string `json:"app_version,omitempty"`
}

type HeartbeatRequest struct {
	TerminalID       string `json:"terminal_id"`
	Status           string `json:"status"`
	IPAddress        string `json:"ip_address,omitempty"`
	PendingSyncCount int    `json:"pending_sync_count"`
	UPSConnected     bool   `json:"ups_connected"`
	UPSBatteryLevel  *int   `json:"ups_battery_level,omitempty"`
	UPSStatus        string `json:"ups_status,omitempty"`
	AppVersion       string `json:"app_version,omitempty"`
}

type TerminalUpdateRequest struct {
	TerminalName  *string        `json:"terminal_name,omitempty"`
	DisplayName   *string        `json:"display_name,omitempty"`
	Status        *string        `json:"status,omitempty"`
	Configuration map[string]any `json:"configuration,omitempty"`
}

type InitializeTerminalResponse struct {
	Success    bool   `json:"success"`
	TerminalID string `json:"terminal_id"`
	Message    string `json:"message"`
}

type TerminalListResponse struct {
	Success   bool       `json:"success"`
	Terminals []Terminal `json:"terminals"`
	Count     int        `json:"count"`
}

type TerminalDetailResponse struct {
	Success  bool     `json:"success"`
	Terminal Terminal `json:"terminal"`
}

type ConnectivityStatus struct {
	NetworkAvailable       bool   `json:"network_available"`
	MainComputerReachable  bool   `json:"main_computer_reachable"`
	SharedFolderAccessible bool   `json:"shared_folder_accessible"`
	DatabaseAccessible     bool   `json:"database_accessible"`
	LatencyMS              *int64 `json:"latency_ms,omitempty"`
	ErrorMessage           string `json:"error_message,omitempty"`
}

type NetworkTestRequest struct {
	NetworkPath  string `json:"network_path,omitempty"`
	TerminalType string `json:"terminal_type"`
}

type NetworkTestResponse struct {
	Success      bool               `json:"success"`
	Connectivity ConnectivityStatus `json:"connectivity"`
}

type SyncRequest struct {
	TerminalID string `json:"terminal_id"`
	ForceSync  bool   `json:"force_sync"`
}

type SyncStatus struct {
	TerminalID        string `json:"terminal_id"`
	SyncStatus        string `json:"sync_status"`
	LastSyncTime      string `json:"last_sync_time,omitempty"`
	PendingSyncCount  int    `json:"pending_sync_count"`
	NeedsSync         bool   `json:"needs_sync"`
	SyncStatusDisplay string `json:"sync_status_display,omitempty"`
}

type SyncStatusResponse struct {
	Success    bool       `json:"success"`
	SyncStatus SyncStatus `json:"sync_status"`
}

type OfflineDataResponse struct {
	Success bool             `json:"success"`
	Data    []map[string]any `json:"data"`
	Count   int              `json:"count"`
}

type WhatsAppConfig struct {
	ID                       int    `json:"id"`
	APIURL                   string `json:"api_url"`
	BusinessPhone            string `json:"business_phone"`
	BusinessName             string `json:"business_name"`
	AutoSendReceipts         bool   `json:"auto_send_receipts"`
	DailyReportsEnabled      bool   `json:"daily_reports_enabled"`
	CustomerRemindersEnabled bool   `json:"customer_reminders_enabled"`
	DailyReportTime          string `json:"daily_report_time"`
	OwnerPhone               string `json:"owner_phone,omitempty"`
}

type SendReceiptRequest struct {
	SaleID int    `json:"sale_id"`
	Phone  string `json:"phone,omitempty"`
}

type SendReminderRequest struct {
	CustomerID      int    `json:"customer_id"`
	MessageTemplate string `json:"message_template,omitempty"`
}

type WhatsAppMessage struct {
	ID             int    `json:"id"`
	RecipientPhone string `json:"recipient_phone"`
	RecipientName  string `json:"recipient_name,omitempty"`
	MessageType    string `json:"message_type"`
	Status         string `json:"status"`
	ErrorMessage   string `json:"error_message,omitempty"`
	SentAt         string `json:"sent_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type Festival struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	NameSi              string `json:"name_si,omitempty"`
	NameTa              string `json:"name_ta,omitempty"`
	Date                string `json:"date"`
	Type                string `json:"type"`
	Category            string `json:"category,omitempty"`
	IsPublicHoliday     bool   `json:"is_public_holiday"`
	IsPoyaDay           bool   `json:"is_poya_day"`
	ExpectedSalesImpact string `json:"expected_sales_impact,omitempty"`
	GreetingMessageEn   string `json:"greeting_message_en,omitempty"`
	DaysUntil           int    `json:"days_until"`
}

type BusinessDayCheck struct {
	Date            string     `json:"date"`
	IsBusinessDay   bool       `json:"is_business_day"`
	IsPublicHoliday bool       `json:"is_public_holiday"`
	IsPoyaDay       bool       `json:"is_poya_day"`
	Festivals       []Festival `json:"festivals,omitempty"`
}

type VATCalculationRequest struct {
	Amount  float64 `json:"amount"`
	VATRate float64 `json:"vat_rate"`
}

type VATCalculationResponse struct {
	Subtotal  float64 `json:"subtotal"`
	VATAmount float64 `json:"vat_amount"`
	Total     float64 `json:"total"`
	VATRate   float64 `json:"vat_rate"`
}

type MobilePaymentProvider struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameSi        string  `json:"name_si,omitempty"`
	NameTa        string  `json:"name_ta,omitempty"`
	IsActive      bool    `json:"is_active"`
	FeePercentage float64 `json:"fee_percentage"`
	MinAmount     float64 `json:"min_amount"`
	MaxAmount     float64 `json:"max_amount"`
}

type UPSStatus struct {
	Connected    bool   `json:"connected"`
	BatteryLevel *int   `json:"battery_level,omitempty"`
	Status       string `json:"status,omitempty"`
	EstimatedMin *int   `json:"estimated_runtime_minutes,omitempty"`
}

type PowerEvent struct {
	ID        int    `json:"id"`
	EventType string `json:"event_type"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodMobile = "mobile"
	PaymentMethodCredit = "credit"
)

const (
	TerminalTypeMain   = "main"
	TerminalTypeClient = "client"
)

const (
	TerminalStatusOnline      = "online"
	TerminalStatusOffline     = "offline"
	TerminalStatusMaintenance = "maintenance"
	TerminalStatusError       = "error"
)

const (
	SyncStateSynced   = "synced"
	SyncStatePending  = "pending"
	SyncStateFailed   = "failed"
	SyncStateConflict = "conflict"
)
