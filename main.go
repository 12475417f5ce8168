package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"kopiadmin/internal/config"
	"kopiadmin/internal/models"
	"kopiadmin/internal/pages"
	"kopiadmin/internal/repositories"
	"kopiadmin/internal/services"
	"kopiadmin/internal/session"
	"kopiadmin/pkg/apiclient"
	"kopiadmin/pkg/rabbitmq"
)

type env struct {
	cfg      config.Config
	session  *session.Session
	products repositories.ProductRepository
	cats     repositories.CategoryRepository
	tags     repositories.TagRepository
	orders   repositories.OrderRepository
	users    repositories.UserRepository
	auth     *services.AuthService
}

func newEnv() *env {
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	sess := session.New(cfg.TokenPath)
	if err := sess.Load(); err != nil {
		log.WithError(err).Warn("could not load saved session")
	}

	api := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.HTTPTimeout),
		apiclient.WithTokenSource(sess.Token),
	)

	userRepo := repositories.NewRESTUserRepository(api)
	return &env{
		cfg:      cfg,
		session:  sess,
		products: repositories.NewRESTProductRepository(api, repositories.FallbackProducts()),
		cats:     repositories.NewRESTCategoryRepository(api, repositories.FallbackCategories()),
		tags:     repositories.NewRESTTagRepository(api, repositories.FallbackTags()),
		orders:   repositories.NewRESTOrderRepository(api),
		users:    userRepo,
		auth:     services.NewAuthService(userRepo, sess),
	}
}

func main() {
	e := newEnv()

	app := &cli.App{
		Name:  "kopiadmin",
		Usage: "admin dashboard for the coffee-shop store API",
		Commands: []*cli.Command{
			loginCommand(e),
			logoutCommand(e),
			dashboardCommand(e),
			productsCommand(e),
			categoriesCommand(e),
			tagsCommand(e),
			ordersCommand(e),
			usersCommand(e),
			watchOrdersCommand(e),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loginCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "authenticate as an administrator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			user, err := e.auth.Login(c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}
}

func logoutCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the stored session",
		Action: func(c *cli.Context) error {
			return e.auth.Logout()
		},
	}
}

func dashboardCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "show the store overview",
		Action: func(c *cli.Context) error {
			summary, err := pages.NewDashboardPage(e.products, e.orders).Load()
			if err != nil {
				return err
			}
			fmt.Printf("Revenue:        %.2f\n", summary.TotalRevenue)
			fmt.Printf("Orders:         %d (%d pending)\n", summary.TotalOrders, summary.PendingOrders)
			fmt.Printf("Products:       %d (%d low on stock)\n", summary.TotalProducts, len(summary.LowStockProducts))
			for _, o := range summary.RecentOrders {
				fmt.Printf("Recent order:   #%d %s %s\n", o.ID, o.User.Email, o.TotalPrice)
			}
			return nil
		},
	}
}

func productsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "manage products",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "search"}},
				Action: func(c *cli.Context) error {
					page := pages.NewProductsPage(e.products, e.cats, e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tNAME\tCOST\tQTY")
					for _, p := range page.Search(c.String("search")) {
						fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Cost, p.Quantity)
					}
					return w.Flush()
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "cost", Required: true},
					&cli.StringFlag{Name: "quantity", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringSliceFlag{Name: "category", Usage: "category id (repeatable)"},
					&cli.StringSliceFlag{Name: "tag", Usage: "tag id (repeatable)"},
					&cli.StringFlag{Name: "image", Usage: "path to an image file"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewProductsPage(e.products, e.cats, e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					form := page.OpenAdd()
					form.Name = c.String("name")
					form.Cost = c.String("cost")
					form.Quantity = c.String("quantity")
					form.Description = c.String("description")
					form.CategoryIDs = c.StringSlice("category")
					form.TagIDs = c.StringSlice("tag")
					if path := c.String("image"); path != "" {
						img, err := readImage(path)
						if err != nil {
							return err
						}
						if err := form.AttachImage(*img); err != nil {
							return err
						}
					}
					if err := page.Save(form); err != nil {
						return err
					}
					fmt.Println("Product created")
					return nil
				},
			},
			{
				Name: "delete",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "confirm"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewProductsPage(e.products, e.cats, e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					if err := page.RequestDelete(c.String("id")); err != nil {
						return err
					}
					if !c.Bool("confirm") {
						fmt.Printf("Would delete %q; re-run with --confirm\n", page.DeleteCandidate().Name)
						page.CancelDelete()
						return nil
					}
					return page.ConfirmDelete()
				},
			},
			{
				Name:  "price",
				Usage: "show the catalog's price range",
				Action: func(c *cli.Context) error {
					page := pages.NewProductsPage(e.products, e.cats, e.tags)
					min, max, err := page.PriceRange()
					if err != nil {
						return err
					}
					fmt.Printf("Prices range from %.2f to %.2f\n", min, max)
					return nil
				},
			},
		},
	}
}

func categoriesCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "manage categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "search"}},
				Action: func(c *cli.Context) error {
					page := pages.NewCategoriesPage(e.cats)
					if err := page.Load(); err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tTITLE")
					for _, cat := range page.Search(c.String("search")) {
						fmt.Fprintf(w, "%s\t%s\n", cat.ID, cat.Title)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Flags: []cli.Flag{&cli.StringFlag{Name: "title", Required: true}},
				Action: func(c *cli.Context) error {
					page := pages.NewCategoriesPage(e.cats)
					if err := page.Load(); err != nil {
						return err
					}
					form := page.OpenAdd()
					form.Title = c.String("title")
					return page.Save(form)
				},
			},
			{
				Name: "edit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewCategoriesPage(e.cats)
					if err := page.Load(); err != nil {
						return err
					}
					form, err := page.OpenEdit(c.String("id"))
					if err != nil {
						return err
					}
					form.Title = c.String("title")
					return page.Save(form)
				},
			},
			{
				Name: "delete",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "confirm"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewCategoriesPage(e.cats)
					if err := page.Load(); err != nil {
						return err
					}
					if err := page.RequestDelete(c.String("id")); err != nil {
						return err
					}
					if !c.Bool("confirm") {
						fmt.Printf("Would delete %q; re-run with --confirm\n", page.DeleteCandidate().Title)
						page.CancelDelete()
						return nil
					}
					return page.ConfirmDelete()
				},
			},
		},
	}
}

func tagsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "manage tags",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "search"}},
				Action: func(c *cli.Context) error {
					page := pages.NewTagsPage(e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tNAME")
					for _, t := range page.Search(c.String("search")) {
						fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Name)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Flags: []cli.Flag{&cli.StringFlag{Name: "name", Required: true}},
				Action: func(c *cli.Context) error {
					page := pages.NewTagsPage(e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					form := page.OpenAdd()
					form.Name = c.String("name")
					return page.Save(form)
				},
			},
			{
				Name: "edit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewTagsPage(e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					form, err := page.OpenEdit(c.String("id"))
					if err != nil {
						return err
					}
					form.Name = c.String("name")
					return page.Save(form)
				},
			},
			{
				Name: "delete",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "confirm"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewTagsPage(e.tags)
					if err := page.Load(); err != nil {
						return err
					}
					if err := page.RequestDelete(c.String("id")); err != nil {
						return err
					}
					if !c.Bool("confirm") {
						fmt.Printf("Would delete %q; re-run with --confirm\n", page.DeleteCandidate().Name)
						page.CancelDelete()
						return nil
					}
					return page.ConfirmDelete()
				},
			},
		},
	}
}

func ordersCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "inspect and update orders",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "payment-status"},
					&cli.StringFlag{Name: "delivery-status"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewOrdersPage(e.orders)
					if err := page.Load(); err != nil {
						return err
					}
					filters := pages.OrderFilters{
						Search:         c.String("search"),
						PaymentStatus:  c.String("payment-status"),
						DeliveryStatus: c.String("delivery-status"),
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tCUSTOMER\tTOTAL\tPAYMENT\tDELIVERY")
					for _, o := range page.Filtered(filters) {
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
							o.ID, o.User.Email, o.TotalPrice, o.Payment.Status, o.DeliveryStatus)
					}
					return w.Flush()
				},
			},
			{
				Name: "set-status",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "delivery-status"},
					&cli.StringFlag{Name: "payment-status"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewOrdersPage(e.orders)
					if err := page.Load(); err != nil {
						return err
					}
					var update models.OrderStatusUpdate
					if v := c.String("delivery-status"); v != "" {
						update.DeliveryStatus = &v
					}
					if v := c.String("payment-status"); v != "" {
						update.PaymentStatus = &v
					}
					if update.DeliveryStatus == nil && update.PaymentStatus == nil {
						return fmt.Errorf("nothing to update: pass --delivery-status and/or --payment-status")
					}
					return page.SetStatus(c.Int("id"), update)
				},
			},
		},
	}
}

func usersCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "manage users",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "search"}},
				Action: func(c *cli.Context) error {
					page := pages.NewUsersPage(e.users)
					if err := page.Load(); err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tADMIN")
					for _, u := range page.Search(c.String("search")) {
						fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.IsAdmin)
					}
					return w.Flush()
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password"},
					&cli.StringFlag{Name: "address"},
					&cli.StringFlag{Name: "phone"},
					&cli.BoolFlag{Name: "admin"},
				},
				Action: func(c *cli.Context) error {
					page := pages.NewUsersPage(e.users)
					if err := page.Load(); err != nil {
						return err
					}
					form := page.OpenAdd()
					form.Username = c.String("username")
					form.Email = c.String("email")
					form.Password = c.String("password")
					form.Address = c.String("address")
					form.PhoneNumber = c.String("phone")
					form.IsAdmin = c.Bool("admin")
					if err := page.Save(form); err != nil {
						return err
					}
					fmt.Println("User created")
					return nil
				},
			},
		},
	}
}

func watchOrdersCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "watch-orders",
		Usage: "follow order events from the message broker",
		Action: func(c *cli.Context) error {
			if e.cfg.RabbitMQURL == "" {
				return fmt.Errorf("RABBITMQ_URL is not configured")
			}

			page := pages.NewOrdersPage(e.orders)
			if err := page.Load(); err != nil {
				return err
			}
			log.Infof("watching orders (%d loaded)", page.Len())

			mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: e.cfg.RabbitMQURL})
			if err != nil {
				return err
			}
			defer mq.Close()

			err = mq.ConsumeOrderEvents(func(event rabbitmq.OrderEvent) error {
				log.Infof("order event: #%d %s", event.OrderID, event.Status)
				page.MarkStale()
				if err := page.Reload(); err != nil {
					log.WithError(err).Warn("order reload failed, collection kept")
					return nil
				}
				log.Infof("orders refreshed (%d held)", page.Len())
				return nil
			})
			if err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Info("stopping order watcher")
			return nil
		},
	}
}

func readImage(path string) (*repositories.ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		// Unknown extension; sniff the content before the form rejects it.
		mimeType = http.DetectContentType(data)
	}
	return &repositories.ImageFile{
		Name: filepath.Base(path),
		MIME: mimeType,
		Data: data,
	}, nil
}
