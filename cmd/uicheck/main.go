package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/raushankrgupta/eco-packaging/browser"
	"github.com/raushankrgupta/eco-packaging/config"
	"github.com/raushankrgupta/eco-packaging/utils"
)

func main() {
	config.LoadConfig()

	driverName := flag.String("driver", config.UICheckDriver, "browser driver: chromedp or selenium")
	baseURL := flag.String("url", config.UICheckBaseURL, "analyzer base URL")
	timeout := flag.Duration("timeout", time.Minute, "per-product timeout")
	flag.Parse()

	products := flag.Args()
	if len(products) == 0 {
		products = []string{"Smartphone", "Olive Oil", "T-shirt", "Not A Product", ""}
	}

	driver, err := browser.GetDriver(*driverName, browser.Options{
		ChromeDriverPath: config.ChromeDriverPath,
		Timeout:          *timeout,
	})
	if err != nil {
		log.Fatalf("Failed to get driver: %v", err)
	}

	ctx := context.Background()
	upload := config.AWSBucketName != ""
	if upload {
		if err := utils.InitS3(ctx, config.AWSRegion); err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
	}
	runPrefix := fmt.Sprintf("uicheck/%s", time.Now().UTC().Format("20060102T150405Z"))

	failures := 0
	for _, p := range products {
		fmt.Printf("Testing product: %q\n", p)

		result, err := driver.Analyze(ctx, *baseURL, p)
		if err != nil {
			log.Printf("Failed to analyze %q: %v\n", p, err)
			failures++
			continue
		}

		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Printf("Result: %s\n", string(b))

		if upload && len(result.Screenshot) > 0 {
			key := fmt.Sprintf("%s/%s.png", runPrefix, screenshotName(p))
			if _, err := utils.UploadFileToS3(ctx, config.AWSBucketName, key, result.Screenshot, "image/png"); err != nil {
				log.Printf("Failed to upload screenshot for %q: %v\n", p, err)
			} else {
				fmt.Printf("Screenshot: s3://%s/%s\n", config.AWSBucketName, key)
			}
		}
		fmt.Println("--------------------------------------------------")
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func screenshotName(product string) string {
	name := strings.ToLower(strings.TrimSpace(product))
	if name == "" {
		return "empty"
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, name)
}
