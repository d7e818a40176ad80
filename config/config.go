package config

import (
	"dpp/model"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 配置文件路径，固定，不从命令行读取
const Path = "conf/config.ini"

type Config struct {
	Grid    Grid
	Surface Surface
	Render  Render
	Server  Server
	Log     Log
}

type Grid struct {
	Lower float64
	Upper float64
	Count int
}

type Surface struct {
	C float64
}

type Render struct {
	Colormap string
	Width    int
	Height   int
	Title    string
}

type Server struct {
	Enabled bool
	Addr    string
}

type Log struct {
	Level log.Level
}

// Load 读取配置文件，文件不存在时使用默认值
func Load(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}
	return loadCfg(file)
}

// Default 与 model 中的常量一致
func Default() Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) Config {
	level, err := log.ParseLevel(file.Section("log").Key("Level").MustString("info"))
	if err != nil {
		level = log.InfoLevel
	}
	return Config{
		Grid: Grid{
			Lower: file.Section("grid").Key("Lower").MustFloat64(model.Lower),
			Upper: file.Section("grid").Key("Upper").MustFloat64(model.Upper),
			Count: file.Section("grid").Key("Count").MustInt(model.Count),
		},
		Surface: Surface{
			C: file.Section("surface").Key("C").MustFloat64(model.C),
		},
		Render: Render{
			Colormap: file.Section("render").Key("Colormap").MustString(model.Colormap),
			Width:    file.Section("render").Key("Width").MustInt(960),
			Height:   file.Section("render").Key("Height").MustInt(720),
			Title:    file.Section("render").Key("Title").MustString("1 + 2abc - a² - b² - c²"),
		},
		Server: Server{
			Enabled: file.Section("server").Key("Enabled").MustBool(false),
			Addr:    file.Section("server").Key("Addr").MustString(":9000"),
		},
		Log: Log{
			Level: level,
		},
	}
}

func (c Config) Env() model.Env {
	return model.Env{
		Lower:    c.Grid.Lower,
		Upper:    c.Grid.Upper,
		Count:    c.Grid.Count,
		C:        c.Surface.C,
		Colormap: c.Render.Colormap,
	}
}
