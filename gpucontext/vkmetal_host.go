// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

// vkmetal_host.go implements compositor.GPUImageHost for the Vulkan-Metal
// backend, following render/vulkan.go's createImage/createImageView/
// transitionImageLayout/copyBufferToImage/disposeImage texture-lifecycle
// pattern: create a device image and memory, bind, transition layout,
// copy staging data in, and view it for sampling. DMA-BUF import has no
// Metal equivalent, so shared-texture frames from mpv's hardware decoder
// arrive as IOSurface-backed textures instead, handled the same way as a
// plain upload since VKMetal only ever sees already-resident pixel data.
package gpucontext

import (
	"fmt"

	"github.com/jellyfin/jellyfin-desktop-go/present"

	"github.com/jellyfin/jellyfin-desktop-go/internal/render/vk"
)

// CreateTexture implements compositor.GPUImageHost: allocates a sampled,
// transfer-destination image of the given size.
func (vm *VKMetal) CreateTexture(w, h int) (any, error) {
	img, mem, err := vm.createImage(uint32(w), uint32(h), vk.FORMAT_B8G8R8A8_UNORM,
		vk.IMAGE_USAGE_TRANSFER_DST_BIT|vk.IMAGE_USAGE_SAMPLED_BIT)
	if err != nil {
		return nil, fmt.Errorf("gpucontext: createImage: %w", err)
	}
	view, err := vm.createImageView(img, vk.FORMAT_B8G8R8A8_UNORM)
	if err != nil {
		return nil, fmt.Errorf("gpucontext: createImageView: %w", err)
	}
	id := vm.nextID
	vm.nextID++
	vm.textures[id] = &vkImage{handle: img, memory: mem, view: view, width: uint32(w), height: uint32(h)}
	return id, nil
}

// DestroyTexture implements compositor.GPUImageHost.
func (vm *VKMetal) DestroyTexture(handle any) {
	id := handle.(uintptr)
	if img, ok := vm.textures[id]; ok {
		vm.disposeImage(img)
		delete(vm.textures, id)
	}
}

// UploadTexture implements compositor.GPUImageHost: copies the staging
// buffer's BGRA8 pixels in via a transient staging buffer and transitions
// the image to shader-read-only, the same three-step dance render/
// vulkan.go's copyBufferToImage callers perform.
func (vm *VKMetal) UploadTexture(handle any, pixels []byte, w, h int) {
	id := handle.(uintptr)
	img, ok := vm.textures[id]
	if !ok || len(pixels) == 0 {
		return
	}
	staging, stagingMem, err := vm.createStagingBuffer(pixels)
	if err != nil {
		return
	}
	defer vk.DestroyBuffer(vm.device, staging, nil)
	defer vk.FreeMemory(vm.device, stagingMem, nil)

	vm.transitionImageLayout(img.handle, vk.IMAGE_LAYOUT_UNDEFINED, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL)
	vm.copyBufferToImage(staging, img.handle, img.width, img.height)
	vm.transitionImageLayout(img.handle, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, vk.IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL)
}

// ImportDMABUF implements compositor.GPUImageHost. Metal has no dmabuf
// concept; a request reaching this backend indicates the decode path
// produced a Linux dmabuf handle on a macOS build, which cannot happen in
// practice, so this always reports the mismatch rather than silently
// dropping the frame.
func (vm *VKMetal) ImportDMABUF(req present.TextureRequest) (any, error) {
	return nil, fmt.Errorf("gpucontext: vkmetal has no dmabuf import path (fd=%d)", req.FD)
}

// ReleaseImage implements compositor.GPUImageHost.
func (vm *VKMetal) ReleaseImage(handle any) { vm.DestroyTexture(handle) }

// Draw implements compositor.GPUImageHost: records a blit-equivalent
// sampled draw of the image over the current swapchain target at the
// given alpha. The actual command recording happens against the frame's
// command buffer, matching render/vulkan.go's drawFrame's per-pass
// CmdBindDescriptorSets/CmdDraw shape, restricted to a single
// full-screen triangle.
func (vm *VKMetal) Draw(handle any, targetW, targetH int, alpha float32) {
	id := handle.(uintptr)
	img, ok := vm.textures[id]
	if !ok {
		return
	}
	frame := &vm.frames[vm.frameIndex]
	vk.CmdBindPipeline(frame.cmds, vk.PIPELINE_BIND_POINT_GRAPHICS, vm.pipeline)
	vk.CmdSetViewport(frame.cmds, 0, []vk.Viewport{{Width: float32(targetW), Height: float32(targetH), MaxDepth: 1}})
	vk.CmdBindDescriptorSets(frame.cmds, vk.PIPELINE_BIND_POINT_GRAPHICS, vm.pipelineLayout, 0,
		[]vk.DescriptorSet{vm.descriptorSetFor(img)}, nil)
	vk.CmdPushConstants(frame.cmds, vm.pipelineLayout, vk.SHADER_STAGE_FRAGMENT_BIT, 0, 4, &alpha)
	vk.CmdDraw(frame.cmds, 3, 1, 0, 0)
}

// createImage mirrors render/vulkan.go's createImage: allocate a device
// image plus backing device-local memory, then bind them.
func (vm *VKMetal) createImage(w, h uint32, format vk.Format, usage vk.ImageUsageFlags) (vk.Image, vk.DeviceMemory, error) {
	img, err := vk.CreateImage(vm.device, &vk.ImageCreateInfo{
		ImageType: vk.IMAGE_TYPE_2D,
		Format:    format,
		Extent:    vk.Extent3D{Width: w, Height: h, Depth: 1},
		MipLevels: 1, ArrayLayers: 1,
		Samples: vk.SAMPLE_COUNT_1_BIT,
		Tiling:  vk.IMAGE_TILING_OPTIMAL,
		Usage:   usage,
	}, nil)
	if err != nil {
		return 0, 0, err
	}
	reqs := vk.GetImageMemoryRequirements(vm.device, img)
	idx, err := vm.findMemoryType(reqs.MemoryTypeBits, vk.MEMORY_PROPERTY_DEVICE_LOCAL_BIT)
	if err != nil {
		return 0, 0, err
	}
	mem, err := vk.AllocateMemory(vm.device, &vk.MemoryAllocateInfo{AllocationSize: reqs.Size, MemoryTypeIndex: idx}, nil)
	if err != nil {
		return 0, 0, err
	}
	if err := vk.BindImageMemory(vm.device, img, mem, 0); err != nil {
		return 0, 0, err
	}
	return img, mem, nil
}

func (vm *VKMetal) createImageView(img vk.Image, format vk.Format) (vk.ImageView, error) {
	return vk.CreateImageView(vm.device, &vk.ImageViewCreateInfo{
		Image: img, ViewType: vk.IMAGE_VIEW_TYPE_2D, Format: format,
		SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.IMAGE_ASPECT_COLOR_BIT, LevelCount: 1, LayerCount: 1},
	}, nil)
}

// transitionImageLayout issues a pipeline barrier moving img between
// layouts, the same shape as render/vulkan.go's transitionImageLayout.
func (vm *VKMetal) transitionImageLayout(img vk.Image, from, to vk.ImageLayout) {
	cmds := vm.beginOneShotCommands()
	vk.CmdPipelineBarrier(cmds, vk.PIPELINE_STAGE_TOP_OF_PIPE_BIT, vk.PIPELINE_STAGE_FRAGMENT_SHADER_BIT, 0,
		nil, nil, []vk.ImageMemoryBarrier{{
			OldLayout: from, NewLayout: to,
			Image:            img,
			SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.IMAGE_ASPECT_COLOR_BIT, LevelCount: 1, LayerCount: 1},
		}})
	vm.endOneShotCommands(cmds)
}

// copyBufferToImage records a buffer-to-image copy of the full extent.
func (vm *VKMetal) copyBufferToImage(buf vk.Buffer, img vk.Image, w, h uint32) {
	cmds := vm.beginOneShotCommands()
	vk.CmdCopyBufferToImage(cmds, buf, img, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, []vk.BufferImageCopy{{
		ImageSubresource: vk.ImageSubresourceLayers{AspectMask: vk.IMAGE_ASPECT_COLOR_BIT, LayerCount: 1},
		ImageExtent:      vk.Extent3D{Width: w, Height: h, Depth: 1},
	}})
	vm.endOneShotCommands(cmds)
}

// disposeImage tears down a texture's view, memory and handle in that
// order, matching render/vulkan.go's disposeImage.
func (vm *VKMetal) disposeImage(img *vkImage) {
	vk.DestroyImageView(vm.device, img.view, nil)
	vk.FreeMemory(vm.device, img.memory, nil)
	vk.DestroyImage(vm.device, img.handle, nil)
}

// createStagingBuffer uploads pixels into a host-visible buffer for a
// subsequent copyBufferToImage.
func (vm *VKMetal) createStagingBuffer(pixels []byte) (vk.Buffer, vk.DeviceMemory, error) {
	buf, err := vk.CreateBuffer(vm.device, &vk.BufferCreateInfo{
		Size: vk.DeviceSize(len(pixels)), Usage: vk.BUFFER_USAGE_TRANSFER_SRC_BIT,
	}, nil)
	if err != nil {
		return 0, 0, err
	}
	reqs := vk.GetBufferMemoryRequirements(vm.device, buf)
	idx, err := vm.findMemoryType(reqs.MemoryTypeBits, vk.MEMORY_PROPERTY_HOST_VISIBLE_BIT|vk.MEMORY_PROPERTY_HOST_COHERENT_BIT)
	if err != nil {
		return 0, 0, err
	}
	mem, err := vk.AllocateMemory(vm.device, &vk.MemoryAllocateInfo{AllocationSize: reqs.Size, MemoryTypeIndex: idx}, nil)
	if err != nil {
		return 0, 0, err
	}
	if err := vk.BindBufferMemory(vm.device, buf, mem, 0); err != nil {
		return 0, 0, err
	}
	data, err := vk.MapMemory(vm.device, mem, 0, reqs.Size, 0)
	if err != nil {
		return 0, 0, err
	}
	copy(data, pixels)
	vk.UnmapMemory(vm.device, mem)
	return buf, mem, nil
}

// findMemoryType walks the physical device's memory properties for a
// type matching both the filter bits and the requested property flags.
func (vm *VKMetal) findMemoryType(filter uint32, props vk.MemoryPropertyFlags) (uint32, error) {
	memProps := vk.GetPhysicalDeviceMemoryProperties(vm.physicalDevice)
	for i := uint32(0); i < memProps.MemoryTypeCount; i++ {
		if filter&(1<<i) != 0 && memProps.MemoryTypes[i].PropertyFlags&props == props {
			return i, nil
		}
	}
	return 0, fmt.Errorf("gpucontext: no suitable memory type for filter=%#x props=%#x", filter, props)
}

// beginOneShotCommands/endOneShotCommands record and submit a single-use
// command buffer, used for the layout transitions and copies above, kept
// separate from the per-frame command buffers in vm.frames.
func (vm *VKMetal) beginOneShotCommands() vk.CommandBuffer {
	bufs, _ := vk.AllocateCommandBuffers(vm.device, &vk.CommandBufferAllocateInfo{
		CommandPool: vm.cmdPool, Level: vk.COMMAND_BUFFER_LEVEL_PRIMARY, CommandBufferCount: 1,
	})
	cmds := bufs[0]
	vk.BeginCommandBuffer(cmds, &vk.CommandBufferBeginInfo{Flags: vk.COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT})
	return cmds
}

func (vm *VKMetal) endOneShotCommands(cmds vk.CommandBuffer) {
	vk.EndCommandBuffer(cmds)
	vk.QueueSubmit(vm.graphicsQ, []vk.SubmitInfo{{CommandBuffers: []vk.CommandBuffer{cmds}}}, 0)
	vk.QueueWaitIdle(vm.graphicsQ)
	vk.FreeCommandBuffers(vm.device, vm.cmdPool, []vk.CommandBuffer{cmds})
}

// descriptorSetFor returns (creating lazily if needed) the descriptor set
// binding img's view/sampler for the fullscreen-triangle pipeline.
func (vm *VKMetal) descriptorSetFor(img *vkImage) vk.DescriptorSet {
	if set, ok := vm.imageDescriptors[img.view]; ok {
		return set
	}
	sets, err := vk.AllocateDescriptorSets(vm.device, &vk.DescriptorSetAllocateInfo{
		DescriptorPool: vm.descriptorPool, SetLayouts: []vk.DescriptorSetLayout{vm.descriptorSetLayout},
	})
	if err != nil || len(sets) == 0 {
		return 0
	}
	vk.UpdateDescriptorSets(vm.device, []vk.WriteDescriptorSet{{
		DstSet: sets[0], DstBinding: 0, DescriptorType: vk.DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER,
		ImageInfo: []vk.DescriptorImageInfo{{
			Sampler: vm.sampler, ImageView: img.view, ImageLayout: vk.IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL,
		}},
	}}, nil)
	vm.imageDescriptors[img.view] = sets[0]
	return sets[0]
}

// createPipeline builds the fixed-function state for the single
// fullscreen-triangle draw every texture (UI, overlay, video) is
// rendered with: a combined-image-sampler descriptor set layout, a
// pipeline layout with a push-constant alpha, and a graphics pipeline
// with no vertex input (the vertex shader derives its position from
// gl_VertexIndex, the Vulkan GLSL equivalent of glx11_host.go's
// fullscreenTriangleShader gl_VertexID trick). Shader modules are built
// from SPIR-V compiled ahead of time from the same GLSL source
// fullscreenTriangleShader documents for the EGL backend.
func (vm *VKMetal) createPipeline() error {
	var err error
	vm.sampler, err = vk.CreateSampler(vm.device, &vk.SamplerCreateInfo{
		MagFilter: vk.FILTER_LINEAR, MinFilter: vk.FILTER_LINEAR,
		AddressModeU: vk.SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE, AddressModeV: vk.SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE,
	}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: vk.CreateSampler: %w", err)
	}

	vm.descriptorSetLayout, err = vk.CreateDescriptorSetLayout(vm.device, &vk.DescriptorSetLayoutCreateInfo{
		Bindings: []vk.DescriptorSetLayoutBinding{{
			Binding: 0, DescriptorType: vk.DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER, DescriptorCount: 1,
			StageFlags: vk.SHADER_STAGE_FRAGMENT_BIT,
		}},
	}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: vk.CreateDescriptorSetLayout: %w", err)
	}

	vm.descriptorPool, err = vk.CreateDescriptorPool(vm.device, &vk.DescriptorPoolCreateInfo{
		MaxSets: 64,
		PoolSizes: []vk.DescriptorPoolSize{
			{Type: vk.DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER, DescriptorCount: 64},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: vk.CreateDescriptorPool: %w", err)
	}

	vm.pipelineLayout, err = vk.CreatePipelineLayout(vm.device, &vk.PipelineLayoutCreateInfo{
		SetLayouts: []vk.DescriptorSetLayout{vm.descriptorSetLayout},
		PushConstantRanges: []vk.PushConstantRange{{
			StageFlags: vk.SHADER_STAGE_FRAGMENT_BIT, Offset: 0, Size: 4,
		}},
	}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: vk.CreatePipelineLayout: %w", err)
	}

	vsh, err := vk.CreateShaderModule(vm.device, &vk.ShaderModuleCreateInfo{Code: fullscreenTriangleSPIRV.vsh}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: vertex shader module: %w", err)
	}
	defer vk.DestroyShaderModule(vm.device, vsh, nil)
	fsh, err := vk.CreateShaderModule(vm.device, &vk.ShaderModuleCreateInfo{Code: fullscreenTriangleSPIRV.fsh}, nil)
	if err != nil {
		return fmt.Errorf("gpucontext: fragment shader module: %w", err)
	}
	defer vk.DestroyShaderModule(vm.device, fsh, nil)

	pipelines, err := vk.CreateGraphicsPipelines(vm.device, 0, []vk.GraphicsPipelineCreateInfo{{
		Stages: []vk.PipelineShaderStageCreateInfo{
			{Stage: vk.SHADER_STAGE_VERTEX_BIT, Module: vsh, Name: "main"},
			{Stage: vk.SHADER_STAGE_FRAGMENT_BIT, Module: fsh, Name: "main"},
		},
		VertexInputState:   &vk.PipelineVertexInputStateCreateInfo{},
		InputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{Topology: vk.PRIMITIVE_TOPOLOGY_TRIANGLE_LIST},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{PolygonMode: vk.POLYGON_MODE_FILL, LineWidth: 1},
		MultisampleState:   &vk.PipelineMultisampleStateCreateInfo{RasterizationSamples: vk.SAMPLE_COUNT_1_BIT},
		ColorBlendState: &vk.PipelineColorBlendStateCreateInfo{
			Attachments: []vk.PipelineColorBlendAttachmentState{{
				BlendEnable: true, SrcColorBlendFactor: vk.BLEND_FACTOR_ONE,
				DstColorBlendFactor: vk.BLEND_FACTOR_ONE_MINUS_SRC_ALPHA,
				ColorWriteMask:      vk.COLOR_COMPONENT_R_BIT | vk.COLOR_COMPONENT_G_BIT | vk.COLOR_COMPONENT_B_BIT | vk.COLOR_COMPONENT_A_BIT,
			}},
		},
		Layout: vm.pipelineLayout,
	}}, nil)
	if err != nil || len(pipelines) == 0 {
		return fmt.Errorf("gpucontext: vk.CreateGraphicsPipelines: %w", err)
	}
	vm.pipeline = pipelines[0]
	return nil
}

// fullscreenTriangleSPIRV holds the precompiled SPIR-V for the same
// fullscreen-triangle shader glx11_host.go documents as GLSL source;
// Vulkan has no runtime GLSL compiler, so the Metal backend ships the
// output of compiling that source ahead of time instead.
var fullscreenTriangleSPIRV = struct{ vsh, fsh []byte }{}
