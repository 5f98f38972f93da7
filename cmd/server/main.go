package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"govfunding_backend/internal/app/di"
	"govfunding_backend/internal/app/router"
	contractsusecase "govfunding_backend/internal/feature/contracts/usecase"
	financialshandler "govfunding_backend/internal/feature/financials/transport/handler"
	financialsusecase "govfunding_backend/internal/feature/financials/usecase"
	marketcapusecase "govfunding_backend/internal/feature/marketcap/usecase"
	searchhandler "govfunding_backend/internal/feature/search/transport/handler"
	searchusecase "govfunding_backend/internal/feature/search/usecase"
	"govfunding_backend/internal/shared/ratelimiter"
)

func main() {
	// .env があれば読み込む（本番では環境変数を直接設定）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment")
	}

	// SECフェアユース上限（10リクエスト/秒）をEDGAR系クライアントで共有
	secLimiter := ratelimiter.NewRateLimiter(10, time.Second)

	// Repository
	filingsRepo := di.NewFilings(secLimiter)
	marketRepo := di.NewMarket()
	awardsRepo := di.NewAwardSearch()
	tickersRepo := di.NewTickerDirectory(secLimiter)

	// Usecase
	marketcapUC := marketcapusecase.NewMarketCapUsecase(filingsRepo, marketRepo)
	contractsUC := contractsusecase.NewContractsUsecase(awardsRepo)
	financialsUC := financialsusecase.NewFinancialsUsecase(marketcapUC, contractsUC)
	searchUC := searchusecase.NewSearchUsecase(tickersRepo)

	// Handler
	financialsH := financialshandler.NewFinancialsHandler(financialsUC)
	searchH := searchhandler.NewSearchHandler(searchUC)

	// ルータ生成
	r := router.NewRouter(financialsH, searchH)

	// Twelve DataのAPIキーチェック（開発中の注意喚起）
	if os.Getenv("TWELVE_DATA_API_KEY") == "" {
		log.Println("[WARN] TWELVE_DATA_API_KEY is not set. Price lookups will fail.")
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
