package brand

import (
	"fmt"

	"github.com/eringen/showroom/catalog"
)

// Preset keys.
const (
	HCFurniture = "hc-furniture"
	CasaItalia  = "casa-italia"
	Foreverwell = "foreverwell"
)

func init() {
	register(hcFurniture())
	register(casaItalia())
	register(foreverwell())
}

var furnitureSlides = []Slide{
	{Image: "/images/02.png", Title: "Modern Essence", Subtitle: "Custom Furniture Manufacturer for Europe & North America"},
	{Image: "/images/03.png", Title: "Natural Harmony", Subtitle: "Custom Furniture Manufacturer for Europe & North America"},
	{Image: "/images/04.png", Title: "Timeless Comfort", Subtitle: "Custom Furniture Manufacturer for Europe & North America"},
}

func showcase() []string {
	out := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		out = append(out, fmt.Sprintf("/images/img/%02d.png", i))
	}
	return out
}

func hcFurniture() Brand {
	return Brand{
		Key:     HCFurniture,
		Name:    "HC Furniture Supply",
		Tagline: "Custom Furniture Manufacturer for Europe & North America",
		Locale:  "en",
		Nav: []NavItem{
			{"Home", "/"},
			{"Collection", "/collection/"},
			{"Projects", "/projects/"},
			{"About Us", "/about/"},
			{"Contact", "/contact/"},
		},
		GateImage: "/images/01.png",
		Slides:    furnitureSlides,
		Intro: "We build **made-to-order furniture** for hotels, offices and homes, " +
			"from the first sketch to the last screw.",
		About: "## About HC Furniture Supply\n\n" +
			"Our factories combine traditional joinery with modern production lines. " +
			"Every piece is built to order and inspected before it leaves the floor.\n\n" +
			"- Hospitality fit-outs\n- Office furniture\n- Residential collections\n",
		Showcase: showcase(),
		Collection: Listing{
			Title:            "Collection",
			Intro:            "Browse the full range by category.",
			Category:         "fenlei",
			Count:            100,
			Exclude:          []string{"fenlei", "分类"},
			CollectionFormat: "The %s Collection",
		},
		Projects: &Listing{
			Title:            "Projects",
			Intro:            "Selected hospitality and workplace projects.",
			Category:         "anli",
			Count:            100,
			Exclude:          []string{"anli", "案例"},
			CollectionFormat: "The %s Project",
		},
		Team: Team{
			Heading:     "Leadership",
			MemberTitle: "Director",
			NoBio:       "Biography coming soon.",
		},
		Contact: Contact{
			Heading: "Get in touch",
			Lines: []ContactLine{
				{"General enquiries", "info@hcfurniture.example"},
				{"Phone", "+86 20 0000 0000"},
			},
			Form: true,
		},
		Footer: "© 2024 HC Furniture Supply. All Rights Reserved.",
	}
}

func casaItalia() Brand {
	return Brand{
		Key:     CasaItalia,
		Name:    "Casa Italia",
		Tagline: "Italian design, made to last",
		Locale:  "en",
		Nav: []NavItem{
			{"Home", "/"},
			{"Collection", "/collection/"},
			{"About Us", "/about/"},
			{"Team", "/team/"},
			{"Contact", "/contact/"},
		},
		GateImage: "/images/01.png",
		Slides:    furnitureSlides,
		Intro:     "Contemporary Italian furniture, drawn by the designers who shaped it.",
		About: "## Casa Italia\n\n" +
			"Casa Italia brings together the studios of Milan and Brianza under one roof. " +
			"Each collection is produced in small series.\n",
		Showcase: showcase(),
		Collection: Listing{
			Title:            "The Collection",
			Intro:            "Filter by category or by designer.",
			Category:         "fenlei",
			Count:            100,
			Exclude:          []string{"fenlei", "分类"},
			CollectionFormat: "The %s Collection",
			Designer:         "Casa Italia",
		},
		Designers: []Designer{
			{"Alessandro Mendini", "/images/renwu/001.png"},
			{"Patricia Urquiola", "/images/renwu/002.png"},
			{"Piero Lissoni", "/images/renwu/003.png"},
			{"Antonio Citterio", "/images/renwu/004.png"},
			{"Rodolfo Dordoni", "/images/renwu/005.png"},
		},
		Team: Team{
			Heading:     "Visionaries",
			GallerySlug: "visionaries-gallery",
			MemberTitle: "Master Designer",
			NoBio:       "Biography coming soon.",
		},
		Contact: Contact{
			Heading: "Visit the showroom",
			Lines: []ContactLine{
				{"Showroom", "Via della Spiga 1, Milano"},
				{"Email", "showroom@casaitalia.example"},
			},
			Form: true,
		},
		Footer: "© 2024 Casa Italia. All Rights Reserved.",
	}
}

func foreverwell() Brand {
	return Brand{
		Key:     Foreverwell,
		Name:    "保利永安",
		Tagline: "文化 · 艺术 · 投资",
		Locale:  "zh-Hans",
		Nav: []NavItem{
			{"首页", "/"},
			{"公司简介", "/about/"},
			{"领导团队", "/team/"},
			{"馆藏精品", "/collection/"},
			{"证书查询", "/certificate/"},
			{"联系我们", "/contact/"},
		},
		GateImage: "/images/01.png",
		Slides: []Slide{
			{Image: "/images/img/05.png", Title: "博物馆", Subtitle: "展示中国文化与艺术的重要机构"},
			{Image: "/images/img/06.png", Title: "拍卖", Subtitle: "为艺术品收藏者和投资者提供优质的拍卖服务"},
			{Image: "/images/img/07.png", Title: "国际展览", Subtitle: "卓越的展览服务与解决方案"},
		},
		Intro: "保利永安旅游投资有限公司致力于打造具有国际视野的综合性文化投资平台。",
		About: "## 公司简介\n\n" +
			"旗下子公司：\n\n" +
			"- 保利永安博物馆有限公司\n" +
			"- 保利永安拍卖行有限公司\n" +
			"- 保利典当行有限公司\n",
		Showcase: showcase(),
		Collection: Listing{
			Title:            "馆藏精品",
			Category:         "fenlei",
			Count:            100,
			Exclude:          []string{"fenlei", "分类"},
			CollectionFormat: "%s",
		},
		Team: Team{
			Heading:     "领导团队",
			GallerySlug: "visionaries-gallery",
			MemberTitle: "Master Designer",
			NoBio:       "暂无简介",
			Fallback: []catalog.Member{
				{Name: "阮永虎", Title: "董事长 / Chairman", ImageURL: "/images/renwu/001.png", Bio: []string{
					"阮永虎，1965年3月出生于中国安徽省合肥市。自幼聪慧勤学，对中华传统文化和艺术表现出浓厚兴趣。",
					"1997年10月，阮永虎与文化界同仁携手，共同创办中国保利文化艺术品有限公司。",
					"2004年，阮永虎赴澳门创办保利永安旅游投资有限公司，拓展文化与旅游产业的融合之路。",
				}},
				{Name: "吴戴基", Title: "副董事长", ImageURL: "/images/renwu/002.png", Bio: []string{
					"资深文化产业投资人，拥有丰富的跨国企业管理经验。",
				}},
				{Name: "刘志远", Title: "股东", ImageURL: "/images/renwu/003.png", Bio: []string{
					"著名艺术品收藏家，对明清瓷器有极深的研究。",
				}},
				{Name: "应金鸿", Title: "总经理", ImageURL: "/images/renwu/004.png", Bio: []string{
					"拥有二十余年旅游与酒店管理经验。",
				}},
				{Name: "马保平", Title: "公司顾问", ImageURL: "/images/renwu/005.png", Bio: []string{
					"文化界资深专家，为集团的发展战略提供宏观指导与学术支持。",
				}},
			},
		},
		Certificates: &Certificates{
			Heading:  "鉴定证书查询",
			Intro:    "根据鉴定证书编号及防伪密码，即可访问专属界面，查看鉴定证书电子档、藏品详细图片及内容介绍。",
			Category: "zhengshu",
		},
		Contact: Contact{
			Heading: "对话",
			Lines: []ContactLine{
				{"综合咨询", "（+853）68685946"},
				{"拍卖与征集", "（+853）68685946"},
			},
			Form: true,
		},
		Footer: "© 2024 保利永安. 版权所有.",
	}
}
