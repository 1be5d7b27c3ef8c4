package di

import (
	"factnet/driver/factnet_db"
	"factnet/gateway/article_gateway"
	"factnet/gateway/dashboard_gateway"
	"factnet/gateway/feedback_gateway"
	"factnet/gateway/register_article_gateway"
	"factnet/usecase/article_feedback_usecase"
	"factnet/usecase/dashboard_usecase"
	"factnet/usecase/fetch_articles_usecase"
	"factnet/usecase/register_article_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FetchArticlesListUsecase *fetch_articles_usecase.FetchArticlesListUsecase
	FetchArticleByIDUsecase  *fetch_articles_usecase.FetchArticleByIDUsecase
	RecordVoteUsecase        *article_feedback_usecase.RecordVoteUsecase
	DashboardStatsUsecase    *dashboard_usecase.DashboardStatsUsecase
	RegisterArticleUsecase   *register_article_usecase.RegisterArticleUsecase
	FactnetDBRepository      *factnet_db.FactnetDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool) *ApplicationComponents {
	// Create the concrete gateway implementations
	fetchArticlesGatewayImpl := article_gateway.NewFetchArticlesGateway(pool)
	fetchArticlesListUsecase := fetch_articles_usecase.NewFetchArticlesListUsecase(fetchArticlesGatewayImpl)
	fetchArticleByIDUsecase := fetch_articles_usecase.NewFetchArticleByIDUsecase(fetchArticlesGatewayImpl)

	recordVoteGatewayImpl := feedback_gateway.NewRecordVoteGateway(pool)
	recordVoteUsecase := article_feedback_usecase.NewRecordVoteUsecase(recordVoteGatewayImpl)

	dashboardStatsGatewayImpl := dashboard_gateway.NewDashboardStatsGateway(pool)
	dashboardStatsUsecase := dashboard_usecase.NewDashboardStatsUsecase(dashboardStatsGatewayImpl)

	saveArticleGatewayImpl := register_article_gateway.NewSaveArticleGateway(pool)
	registerArticleUsecase := register_article_usecase.NewRegisterArticleUsecase(saveArticleGatewayImpl)

	factnetDBRepository := factnet_db.NewFactnetDBRepository(pool)

	return &ApplicationComponents{
		FetchArticlesListUsecase: fetchArticlesListUsecase,
		FetchArticleByIDUsecase:  fetchArticleByIDUsecase,
		RecordVoteUsecase:        recordVoteUsecase,
		DashboardStatsUsecase:    dashboardStatsUsecase,
		RegisterArticleUsecase:   registerArticleUsecase,
		FactnetDBRepository:      factnetDBRepository,
	}
}
