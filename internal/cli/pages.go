package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/table"
)

func usageErr(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

// Users lists every account. Editing commits the role field; other fields
// are backend-owned and changes to them stay local.
func (a *App) Users(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Users",
		cacheKey: "users",
		columns: []table.Column{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "role", Label: "Role"},
			{Key: "status", Label: "Status"},
			{Key: "created", Label: "Created"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			users, err := a.svc.Users(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(users))
			for _, u := range users {
				rows = append(rows, table.Row{ID: u.ID, Fields: map[string]string{
					"name":    u.Name,
					"email":   u.Email,
					"role":    u.Role,
					"status":  u.Status,
					"created": u.CreatedAt,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateUserRole(ctx, row.ID, row.Fields["role"])
		},
		remove: func(id string) error {
			return a.svc.DeleteUser(ctx, id)
		},
		extras: map[string]pageCommand{
			"view": {
				usage: "view <id>",
				run: func(ctx context.Context, args []string) error {
					if len(args) != 1 {
						return usageErr("view <id>")
					}
					u, err := a.svc.User(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s\n  %s <%s>\n  role=%s status=%s created=%s\n",
						u.ID, u.Name, u.Email, u.Role, u.Status, u.CreatedAt)
					return nil
				},
			},
			"bulk-delete": {
				usage:  "bulk-delete <id...>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) == 0 {
						return usageErr("bulk-delete <id...>")
					}
					return a.svc.BulkDeleteUsers(ctx, args)
				},
			},
			"new-admin": {
				usage:  "new-admin",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					return a.createAdmin(ctx)
				},
			},
		},
	})
}

// createAdmin collects the sign-up form interactively and registers a new
// admin account.
func (a *App) createAdmin(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter admin username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter admin email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.svc.CreateAdmin(ctx, marketplace.AdminInput{
		UserName: userName,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Admin %s created\n", email)
	return nil
}

func (a *App) Doctors(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Doctors",
		cacheKey: "doctors",
		columns: []table.Column{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "specialization", Label: "Specialization"},
			{Key: "status", Label: "Status"},
			{Key: "fee", Label: "Fee"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			doctors, err := a.svc.Doctors(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(doctors))
			for _, d := range doctors {
				rows = append(rows, table.Row{ID: d.ID, Fields: map[string]string{
					"name":           d.Name,
					"email":          d.Email,
					"specialization": d.Specialization,
					"status":         d.Status,
					"fee":            d.Fee.String(),
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			update := marketplace.DoctorUpdate{
				Name:           row.Fields["name"],
				Email:          row.Fields["email"],
				Specialization: row.Fields["specialization"],
				Status:         row.Fields["status"],
			}
			if raw := row.Fields["fee"]; raw != "" {
				fee, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid fee %q: %w", raw, err)
				}
				update.Fee = &fee
			}
			return a.svc.UpdateDoctor(ctx, row.ID, update)
		},
		extras: map[string]pageCommand{
			"view": {
				usage: "view <id>",
				run: func(ctx context.Context, args []string) error {
					if len(args) != 1 {
						return usageErr("view <id>")
					}
					d, err := a.svc.Doctor(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s\n  %s <%s>\n  %s, fee %s\n  status=%s verified=%t rating=%.1f\n",
						d.ID, d.Name, d.Email, d.Specialization, d.Fee.String(),
						d.Status, d.Verified, d.Rating)
					return nil
				},
			},
			"toggle": {
				usage:  "toggle <id>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) != 1 {
						return usageErr("toggle <id>")
					}
					return a.svc.ToggleDoctorStatus(ctx, args[0])
				},
			},
		},
	})
}

// Verifications lists pending applications. Editing the status field
// commits the decision; a rejection carries the reason field along.
func (a *App) Verifications(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Verifications",
		cacheKey: "verifications",
		columns: []table.Column{
			{Key: "type", Label: "Type"},
			{Key: "applicant", Label: "Applicant"},
			{Key: "status", Label: "Status"},
			{Key: "submitted", Label: "Submitted"},
			{Key: "reason", Label: "Reason"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			vs, err := a.svc.Verifications(ctx, marketplace.VerificationQuery{})
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(vs))
			for _, v := range vs {
				rows = append(rows, table.Row{ID: v.ID, Fields: map[string]string{
					"type":      v.Type,
					"applicant": v.ApplicantName,
					"status":    v.Status,
					"submitted": v.SubmittedAt,
					"reason":    v.RejectionReason,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateVerificationStatus(ctx, row.ID,
				row.Fields["status"], row.Fields["reason"])
		},
		extras: map[string]pageCommand{
			"approve": {
				usage:  "approve <id>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) != 1 {
						return usageErr("approve <id>")
					}
					return a.svc.ApproveDoctorVerification(ctx, args[0])
				},
			},
			"reject": {
				usage:  "reject <id> <reason>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) < 2 {
						return usageErr("reject <id> <reason>")
					}
					return a.svc.RejectDoctorVerification(ctx, args[0], strings.Join(args[1:], " "))
				},
			},
		},
	})
}

func (a *App) Products(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Products",
		cacheKey: "products",
		columns: []table.Column{
			{Key: "name", Label: "Name"},
			{Key: "category", Label: "Category"},
			{Key: "price", Label: "Price"},
			{Key: "stock", Label: "Stock"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			products, err := a.svc.Products(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(products))
			for _, p := range products {
				rows = append(rows, table.Row{ID: p.ID, Fields: map[string]string{
					"name":     p.Name,
					"category": p.Category,
					"price":    p.Price.String(),
					"stock":    fmt.Sprintf("%d", p.Stock),
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			input, err := productInputFromRow(row)
			if err != nil {
				return err
			}
			return a.svc.UpdateProduct(ctx, row.ID, input)
		},
		remove: func(id string) error {
			return a.svc.DeleteProduct(ctx, id)
		},
		extras: map[string]pageCommand{
			"new": {
				usage:  "new",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					return a.createProduct(ctx)
				},
			},
			"pharmacy": {
				usage: "pharmacy <id>",
				run: func(ctx context.Context, args []string) error {
					if len(args) != 1 {
						return usageErr("pharmacy <id>")
					}
					p, err := a.svc.Pharmacy(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s\n  %s\n  %s, %s\n  status=%s\n",
						p.ID, p.Name, p.Address, p.Phone, p.Status)
					return nil
				},
			},
		},
	})
}

// createProduct collects the product form interactively. The image path is
// optional; when given, the file is attached to the multipart upload.
func (a *App) createProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	rawPrice, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return err
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", rawPrice, err)
	}
	rawStock, err := getSimpleText(a.reader, "Stock", a.out)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(rawStock)
	if err != nil {
		return fmt.Errorf("invalid stock %q: %w", rawStock, err)
	}
	imagePath, err := getSimpleText(a.reader, "Image path (empty to skip)", a.out)
	if err != nil {
		return err
	}

	err = a.svc.CreateProduct(ctx, marketplace.ProductInput{
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		ImagePath: imagePath,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s created\n", name)
	return nil
}

func productInputFromRow(row table.Row) (marketplace.ProductInput, error) {
	price, err := decimal.NewFromString(row.Fields["price"])
	if err != nil {
		return marketplace.ProductInput{}, fmt.Errorf("invalid price %q: %w", row.Fields["price"], err)
	}
	var stock int
	if _, err := fmt.Sscanf(row.Fields["stock"], "%d", &stock); err != nil {
		return marketplace.ProductInput{}, fmt.Errorf("invalid stock %q: %w", row.Fields["stock"], err)
	}
	return marketplace.ProductInput{
		Name:     row.Fields["name"],
		Category: row.Fields["category"],
		Price:    price,
		Stock:    stock,
	}, nil
}

func (a *App) Orders(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Orders",
		cacheKey: "orders",
		columns: []table.Column{
			{Key: "number", Label: "Number"},
			{Key: "customer", Label: "Customer"},
			{Key: "status", Label: "Status"},
			{Key: "total", Label: "Total"},
			{Key: "created", Label: "Created"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			orders, err := a.svc.Orders(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, table.Row{ID: o.ID, Fields: map[string]string{
					"number":   o.OrderNumber,
					"customer": o.CustomerName,
					"status":   o.Status,
					"total":    o.Total.String(),
					"created":  o.CreatedAt,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateOrderStatus(ctx, row.ID, row.Fields["status"])
		},
		remove: func(id string) error {
			return a.svc.DeleteOrder(ctx, id)
		},
		extras: map[string]pageCommand{
			"bulk-status": {
				usage:  "bulk-status <status> <id...>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) < 2 {
						return usageErr("bulk-status <status> <id...>")
					}
					return a.svc.BulkUpdateOrderStatus(ctx, args[1:], args[0])
				},
			},
		},
	})
}

func (a *App) Appointments(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Appointments",
		cacheKey: "appointments",
		columns: []table.Column{
			{Key: "doctor", Label: "Doctor"},
			{Key: "patient", Label: "Patient"},
			{Key: "date", Label: "Date"},
			{Key: "time", Label: "Time"},
			{Key: "status", Label: "Status"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			appts, err := a.svc.Appointments(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(appts))
			for _, ap := range appts {
				rows = append(rows, table.Row{ID: ap.ID, Fields: map[string]string{
					"doctor":  ap.DoctorName,
					"patient": ap.PatientName,
					"date":    ap.Date,
					"time":    ap.Time,
					"status":  ap.Status,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateAppointmentStatus(ctx, row.ID, row.Fields["status"])
		},
		remove: func(id string) error {
			return a.svc.DeleteAppointment(ctx, id)
		},
		extras: map[string]pageCommand{
			"bulk-status": {
				usage:  "bulk-status <status> <id...>",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					if len(args) < 2 {
						return usageErr("bulk-status <status> <id...>")
					}
					return a.svc.BulkUpdateAppointmentStatus(ctx, args[1:], args[0])
				},
			},
		},
	})
}

func (a *App) Articles(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Articles",
		cacheKey: "articles",
		columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "category", Label: "Category"},
			{Key: "status", Label: "Status"},
			{Key: "author", Label: "Author"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			articles, err := a.svc.Articles(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(articles))
			for _, ar := range articles {
				rows = append(rows, table.Row{ID: ar.ID, Fields: map[string]string{
					"title":    ar.Title,
					"category": ar.Category,
					"status":   ar.Status,
					"author":   ar.Author,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateArticle(ctx, row.ID, marketplace.ArticleInput{
				Title:    row.Fields["title"],
				Category: row.Fields["category"],
				Status:   row.Fields["status"],
			})
		},
		remove: func(id string) error {
			return a.svc.DeleteArticle(ctx, id)
		},
		extras: map[string]pageCommand{
			"new": {
				usage:  "new",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					return a.createArticle(ctx)
				},
			},
			"health": {
				usage: "health",
				run: func(ctx context.Context, args []string) error {
					articles, err := a.svc.HealthArticles(ctx)
					if err != nil {
						return err
					}
					for _, ar := range articles {
						fmt.Fprintf(a.out, "%s  %s (%s)\n", ar.ID, ar.Title, ar.Category)
					}
					fmt.Fprintf(a.out, "%d health articles\n", len(articles))
					return nil
				},
			},
		},
	})
}

func (a *App) createArticle(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	body, err := getSimpleText(a.reader, "Body", a.out)
	if err != nil {
		return err
	}

	err = a.svc.CreateArticle(ctx, marketplace.ArticleInput{
		Title:    title,
		Category: category,
		Body:     body,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Article created")
	return nil
}

func (a *App) FAQs(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "FAQs",
		cacheKey: "faqs",
		columns: []table.Column{
			{Key: "question", Label: "Question"},
			{Key: "answer", Label: "Answer"},
			{Key: "category", Label: "Category"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			faqs, err := a.svc.FAQs(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(faqs))
			for _, f := range faqs {
				rows = append(rows, table.Row{ID: f.ID, Fields: map[string]string{
					"question": f.Question,
					"answer":   f.Answer,
					"category": f.Category,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateFAQ(ctx, row.ID, marketplace.FAQInput{
				Question: row.Fields["question"],
				Answer:   row.Fields["answer"],
				Category: row.Fields["category"],
			})
		},
		remove: func(id string) error {
			return a.svc.DeleteFAQ(ctx, id)
		},
		extras: map[string]pageCommand{
			"new": {
				usage:  "new",
				reload: true,
				run: func(ctx context.Context, args []string) error {
					return a.createFAQ(ctx)
				},
			},
		},
	})
}

func (a *App) createFAQ(ctx context.Context) error {
	question, err := getSimpleText(a.reader, "Question", a.out)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Answer", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}

	err = a.svc.CreateFAQ(ctx, marketplace.FAQInput{
		Question: question,
		Answer:   answer,
		Category: category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "FAQ created")
	return nil
}

func (a *App) Tickets(ctx context.Context) error {
	return a.runPage(ctx, pageSpec{
		title:    "Tickets",
		cacheKey: "tickets",
		columns: []table.Column{
			{Key: "subject", Label: "Subject"},
			{Key: "user", Label: "User"},
			{Key: "status", Label: "Status"},
			{Key: "priority", Label: "Priority"},
			{Key: "created", Label: "Created"},
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			tickets, err := a.svc.Tickets(ctx, marketplace.TicketQuery{})
			if err != nil {
				return nil, err
			}
			rows := make([]table.Row, 0, len(tickets))
			for _, tk := range tickets {
				rows = append(rows, table.Row{ID: tk.ID, Fields: map[string]string{
					"subject":  tk.Subject,
					"user":     tk.UserName,
					"status":   tk.Status,
					"priority": tk.Priority,
					"created":  tk.CreatedAt,
				}})
			}
			return rows, nil
		},
		save: func(row table.Row) error {
			return a.svc.UpdateTicketStatus(ctx, row.ID, row.Fields["status"])
		},
	})
}
