// @title           rabota API
// @version         1.0
// @description     API доски вакансий: публикация, поиск и отклики.
// @host            localhost:8080
// @BasePath        /

package main

import "rabota_backend/internal/app"

func main() {
	app.Run()
}
