package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mahitha-1310/qkart/internal/api"
	"github.com/mahitha-1310/qkart/internal/cart"
	"github.com/mahitha-1310/qkart/internal/catalog"
	"github.com/mahitha-1310/qkart/internal/config"
	"github.com/mahitha-1310/qkart/internal/domain"
	"github.com/mahitha-1310/qkart/internal/notify"
	"github.com/mahitha-1310/qkart/internal/session"
	"github.com/mahitha-1310/qkart/internal/storefront"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := notify.SlogSink{Logger: logger}

	client := api.NewClient(cfg.BackendURL, cfg.RequestTimeout)

	var cache catalog.SnapshotCache = catalog.NewMemoryCache()
	if cfg.RedisAddr != "" {
		cache = catalog.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.CatalogCacheTTL)
	}

	catalogSvc := catalog.NewService(api.NewCatalogClient(client), cache, sink, logger)
	cartAPI := api.NewCartClient(client)
	controller := cart.NewController(cartAPI, sink, logger)
	sessions := session.NewStore()

	sf := storefront.New(sessions, catalogSvc, controller, cartAPI, api.NewAuthClient(client), sink, logger, cfg.SearchDebounce)

	ctx := context.Background()
	printProducts(sf.LoadCatalog(ctx))

	runShell(ctx, sf)
}

func runShell(ctx context.Context, sf *storefront.Storefront) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`commands: products | search <text> | register <user> <pass> <confirm> | login <user> <pass> | cart | add <productId> <qty> | qty <productId> <n> | logout | quit`)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "products":
			printProducts(sf.LoadCatalog(ctx))
		case "search":
			// Each line is one input event; the debounce window decides
			// when the query actually runs.
			sf.OnQueryInput(strings.Join(fields[1:], " "))
		case "register":
			if len(fields) == 4 {
				sf.Register(ctx, fields[1], fields[2], fields[3])
			}
		case "login":
			if len(fields) == 3 {
				sf.Login(ctx, fields[1], fields[2])
			}
		case "cart":
			sf.RefreshCart(ctx)
			printCart(sf)
		case "add":
			if pid, qty, ok := parseItem(fields); ok {
				sf.AddToCart(ctx, pid, qty)
				printCart(sf)
			}
		case "qty":
			if pid, qty, ok := parseItem(fields); ok {
				sf.SetQuantity(ctx, pid, qty)
				printCart(sf)
			}
		case "logout":
			sf.Logout()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func parseItem(fields []string) (string, int, bool) {
	if len(fields) != 3 {
		return "", 0, false
	}
	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		fmt.Println("quantity must be a number")
		return "", 0, false
	}
	return fields[1], qty, true
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("No products found")
		return
	}
	for _, p := range products {
		fmt.Printf("%-18s  $%-7.2f  %d/5  %s (%s)\n", p.ID, p.Cost, p.Rating, p.Name, p.Category)
	}
}

func printCart(sf *storefront.Storefront) {
	items := sf.LineItems()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for _, li := range items {
		fmt.Printf("%-30s x%-3d  $%.2f\n", li.Product.Name, li.Quantity, li.Cost())
	}
	fmt.Printf("Order total: $%.2f\n", sf.TotalCost())
}
