package request_models

type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

type RouteRequest struct {
	OriginLng      float64 `json:"origin_lng" binding:"required"`
	OriginLat      float64 `json:"origin_lat" binding:"required"`
	DestinationLng float64 `json:"destination_lng" binding:"required"`
	DestinationLat float64 `json:"destination_lat" binding:"required"`
}
