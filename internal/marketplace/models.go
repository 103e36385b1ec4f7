// Package marketplace defines the admin-facing records of the Doorspital
// backend and the REST operations over them.
//
// Records are passed through with light field renaming; the backend stays
// authoritative and missing fields simply decode to zero values. Timestamps
// are kept as strings: they are display content, not data this client
// computes with.
package marketplace

import "github.com/shopspring/decimal"

// Profile is the signed-in admin account.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type Doctor struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Specialization string          `json:"specialization"`
	Status         string          `json:"status"`
	Verified       bool            `json:"isVerified"`
	Rating         float64         `json:"rating"`
	Fee            decimal.Decimal `json:"consultationFee"`
}

// TopDoctor is the ranking projection returned by /api/doctors/top.
type TopDoctor struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Specialization string          `json:"specialization"`
	Rating         float64         `json:"rating"`
	Appointments   int             `json:"appointmentCount"`
	Revenue        decimal.Decimal `json:"revenue"`
}

type Verification struct {
	ID              string `json:"_id"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	ApplicantName   string `json:"applicantName"`
	SubmittedAt     string `json:"submittedAt"`
	RejectionReason string `json:"rejectionReason"`
}

type Pharmacy struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

type Product struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	PharmacyID string          `json:"pharmacyId"`
}

type Order struct {
	ID           string          `json:"_id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"totalAmount"`
	ItemCount    int             `json:"itemCount"`
	CreatedAt    string          `json:"createdAt"`
}

type Appointment struct {
	ID          string `json:"_id"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type Article struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
}

type FAQ struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type Ticket struct {
	ID        string `json:"_id"`
	Subject   string `json:"subject"`
	UserName  string `json:"userName"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"createdAt"`
}

// Settings is the platform configuration record.
type Settings struct {
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	SupportEmail    string          `json:"supportEmail"`
	SupportPhone    string          `json:"supportPhone"`
	MaintenanceMode bool            `json:"maintenanceMode"`
}

// Overview is the dashboard headline counters record.
type Overview struct {
	TotalUsers      int             `json:"totalUsers"`
	TotalDoctors    int             `json:"totalDoctors"`
	TotalPharmacies int             `json:"totalPharmacies"`
	TotalOrders     int             `json:"totalOrders"`
	Revenue         decimal.Decimal `json:"totalRevenue"`
}

// Reports is the dashboard secondary metrics record.
type Reports struct {
	NewUsersThisWeek    int             `json:"newUsersThisWeek"`
	OrdersThisWeek      int             `json:"ordersThisWeek"`
	RevenueThisWeek     decimal.Decimal `json:"revenueThisWeek"`
	PendingVerification int             `json:"pendingVerifications"`
}
