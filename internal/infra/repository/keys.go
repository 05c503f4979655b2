package repository

// 保存キー。元のストレージレイアウトをそのまま踏襲する。
const (
	keyProducts = "vendorProducts" // vendorが一度でも編集したときだけ現れる（無ければseed）
	keyCart     = "vendorCart"
	keyOrders   = "vendor_orders"
	keyWishlist = "wishlist"
)
