package entity

type Sneaker struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	IsPopular   bool    `json:"isPopular"`
	IsFavorite  bool    `json:"isFavorite"`
	Quantity    int     `json:"quantity"`
}

/*
Optional MySQL seed source for the catalog:
CREATE TABLE `sneakers` (
  `id` int(11) NOT NULL AUTO_INCREMENT,
  `name` varchar(255) NOT NULL,
  `description` text NOT NULL,
  `price` double NOT NULL,
  `image_url` varchar(255) NOT NULL,
  `category` varchar(100) NOT NULL,
  `is_popular` tinyint(1) NOT NULL DEFAULT 0,
  PRIMARY KEY (`id`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
*/
